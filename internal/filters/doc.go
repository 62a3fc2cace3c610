// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows tabular report rows with --filter expressions.
//
// An expression is key, operator and target. Several expressions are joined
// with "," (override with COMBCTL_FILTER_DELIM) and a row is kept only when
// it matches all of them.
//
// Operators, each negated with a leading "!":
//
//   - = : exact match (numeric when the column is a number)
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < and > : ordering, numeric when the column is a number
//   - @ : substring, or membership for list and map columns
//   - / : regular expression
//
// A bare key keeps rows where the column is set.
//
// Examples:
//
//   - "rule^sort" : rules whose name starts with "sort"
//   - "value=true" : rules switched on
//   - "rules>20" : presets setting more than twenty rules
//   - "name!=zen" : every preset except zen
package filters
