// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package notify delivers info and error messages to the user. Delivery is
// best effort: sinks never return errors and a failed write is dropped.
package notify
