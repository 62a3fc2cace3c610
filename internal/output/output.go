// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strconv"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/combctl/internal/filters"
	"github.com/tfctl/combctl/internal/resolver"
)

// Format selects a rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates s as a Format. An empty string means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(s)
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("unknown output format %q (must be one of %v)", s, Formats)
	}
	return f, nil
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// Query selects a sub tree of doc using a gjson path. The whole document is
// returned for an empty path.
func Query(doc map[string]interface{}, path string) (interface{}, error) {
	if path == "" {
		return doc, nil
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	result := gjson.GetBytes(raw, path)
	if !result.Exists() {
		return nil, fmt.Errorf("query %q matched nothing", path)
	}
	return result.Value(), nil
}

// Encode writes value as JSON or YAML. Text falls back to a plain rendering:
// scalars as-is, anything else as indented JSON.
func Encode(w io.Writer, value interface{}, format Format) error {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		b, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		switch value.(type) {
		case map[string]interface{}, []interface{}:
			return Encode(w, value, FormatJSON)
		}
		_, err := fmt.Fprintln(w, InterfaceToString(value, "-"))
		return err
	}
}

// Render writes cfg to w. A non-empty query narrows the output to the matching
// sub tree; otherwise opts.Filter narrows the rule rows. Text output of a whole configuration is a header naming its origin
// followed by a rule table.
func Render(w io.Writer, cfg *resolver.ResolvedConfig, format Format, query string, opts TableOptions) error {
	if w == nil {
		w = os.Stdout
	}

	doc, err := cfg.Document()
	if err != nil {
		return err
	}

	value, err := Query(doc, query)
	if err != nil {
		return err
	}

	if query != "" {
		return Encode(w, value, format)
	}

	log.Debugf("output: rendering %d rules from %s", len(doc), cfg.Origin())

	rows := make([]map[string]interface{}, 0, len(doc))
	for k, v := range doc {
		rows = append(rows, map[string]interface{}{"rule": k, "value": v})
	}
	rows = filters.Apply(rows, opts.Filter)

	if format != FormatText {
		kept := make(map[string]interface{}, len(rows))
		for _, r := range rows {
			kept[r["rule"].(string)] = r["value"]
		}
		return Encode(w, kept, format)
	}

	SortDataset(rows, "rule")

	if opts.Header == "" {
		opts.Header = fmt.Sprintf("# %s (%s)", cfg.Origin(), cfg.Provenance)
	}
	TableWriter(rows, []string{"rule", "value"}, opts, w)
	return nil
}

// RenderDecision writes an eligibility decision. Nothing is written when
// filter rejects the decision's row.
func RenderDecision(w io.Writer, target string, cfg *resolver.ResolvedConfig, d resolver.Decision, format Format, filter string) error {
	doc := map[string]interface{}{
		"target":   target,
		"config":   cfg.Origin(),
		"source":   string(cfg.Provenance),
		"eligible": d.Eligible,
		"reason":   string(d.Reason),
		"relpath":  d.RelPath,
	}
	if d.Pattern != "" {
		doc["pattern"] = d.Pattern
	}

	if len(filters.Apply([]map[string]interface{}{doc}, filter)) == 0 {
		return nil
	}

	if format != FormatText {
		return Encode(w, doc, format)
	}

	if w == nil {
		w = os.Stdout
	}

	status := "eligible"
	if !d.Eligible {
		status = "ignored"
		if d.Pattern != "" {
			status += " by " + d.Pattern
		}
	}
	_, err := fmt.Fprintf(w, "%s: %s (config %s)\n", target, status, cfg.Origin())
	return err
}
