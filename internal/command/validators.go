// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/combctl/internal/output"
	"github.com/tfctl/combctl/internal/preset"
	"github.com/tfctl/combctl/internal/resolver"
	"github.com/tfctl/combctl/internal/util"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks cross-flag constraints before an action runs.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.IsSet("lines") && c.NArg() > 1 {
		return fmt.Errorf("--lines applies to a single file, got %d", c.NArg())
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if _, err := output.ParseFormat(s); err != nil {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func PresetValidator(value any) error {
	s, _ := value.(string)
	if s != "" && !preset.Valid(s) {
		return fmt.Errorf("must be one of %v", preset.Strings())
	}
	return nil
}

func GrammarValidator(value any) error {
	s, _ := value.(string)
	if s != "" && !resolver.Supported(s) {
		return fmt.Errorf("must be one of css, less, scss, sass, stylus")
	}
	return nil
}

func DirValidator(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := util.ParseRootDir(s); err != nil {
		return fmt.Errorf("%s is not a directory", s)
	}
	return nil
}
