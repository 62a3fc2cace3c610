// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

type testBuildFiltersCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []Filter `yaml:"want"`
	WantCount int      `yaml:"wantCount"`
}

type testCheckStringOperandCase struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Filter Filter `yaml:"filter"`
	Want   bool   `yaml:"want"`
}

type testCheckNumericOperandCase struct {
	Name   string  `yaml:"name"`
	Value  float64 `yaml:"value"`
	Filter Filter  `yaml:"filter"`
	Want   bool    `yaml:"want"`
}

func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestBuildFilters(t *testing.T) {
	var tests []testBuildFiltersCase
	require.NoError(t, loadTestData("build_filters.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if tt.Delimiter != "" {
				t.Setenv(EnvDelim, tt.Delimiter)
			}

			got := BuildFilters(tt.Spec)
			require.Len(t, got, tt.WantCount)
			for i, filter := range tt.Want {
				assert.Equal(t, filter.Key, got[i].Key)
				assert.Equal(t, filter.Operand, got[i].Operand)
				assert.Equal(t, filter.Value, got[i].Value)
				assert.Equal(t, filter.Negate, got[i].Negate)
			}
		})
	}
}

func TestFilter_String(t *testing.T) {
	assert.Equal(t, "rule!^sort", Filter{Key: "rule", Operand: "^", Value: "sort", Negate: true}.String())
	assert.Equal(t, "rule", Filter{Key: "rule"}.String())
}

func TestCheckStringOperand(t *testing.T) {
	var tests []testCheckStringOperandCase
	require.NoError(t, loadTestData("check_string_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, checkStringOperand(tt.Value, tt.Filter))
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	var tests []testCheckNumericOperandCase
	require.NoError(t, loadTestData("check_numeric_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, checkNumericOperand(tt.Value, tt.Filter))
		})
	}
}

func TestCheckContainsOperand(t *testing.T) {
	list := []any{"$variable", "color"}
	m := map[string]any{"sort-order": true}

	assert.True(t, checkContainsOperand(list, Filter{Operand: "@", Value: "color"}))
	assert.False(t, checkContainsOperand(list, Filter{Operand: "@", Value: "margin"}))
	assert.True(t, checkContainsOperand(list, Filter{Operand: "@", Value: "margin", Negate: true}))
	assert.True(t, checkContainsOperand(m, Filter{Operand: "@", Value: "sort-order"}))
	assert.False(t, checkContainsOperand(m, Filter{Operand: "@", Value: "sort-order", Negate: true}))
	assert.False(t, checkContainsOperand("scalar", Filter{Operand: "@", Value: "x"}))
}

func TestToFloat64(t *testing.T) {
	for _, v := range []interface{}{2, int64(2), uint64(2), float32(2), 2.0} {
		got, ok := toFloat64(v)
		assert.True(t, ok, "%T", v)
		assert.Equal(t, 2.0, got)
	}

	_, ok := toFloat64("2")
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	rows := []map[string]interface{}{
		{"rule": "color-case", "value": "lower"},
		{"rule": "block-indent", "value": 4},
		{"rule": "sort-order", "value": []any{"position", "top"}},
		{"rule": "eof-newline", "value": true},
		{"rule": "unitless-zero", "value": nil},
	}

	tests := []struct {
		name string
		spec string
		want []string
	}{
		{"empty spec keeps all", "", []string{"color-case", "block-indent", "sort-order", "eof-newline", "unitless-zero"}},
		{"prefix", "rule^sort", []string{"sort-order"}},
		{"negated prefix", "rule!^s", []string{"color-case", "block-indent", "eof-newline", "unitless-zero"}},
		{"numeric", "value<5", []string{"block-indent"}},
		{"bool", "value=true", []string{"eof-newline"}},
		{"membership", "value@top", []string{"sort-order"}},
		{"bare key", "value", []string{"color-case", "block-indent", "sort-order", "eof-newline"}},
		{"and", "rule@-,value=lower", []string{"color-case"}},
		{"unknown key ignored", "nope=1,rule=eof-newline", []string{"eof-newline"}},
		{"regex", "rule/^(color|eof)-", []string{"color-case", "eof-newline"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(rows, tt.spec)
			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r["rule"].(string))
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
