// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/protoctl/internal/attrs"
	"github.com/staranto/protoctl/internal/output"
)

// GlobalFlagsValidator checks flags every rendering subcommand shares.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.String("output") == "" {
		return nil
	}
	return OutputValidator(c.String("output"))
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, value.(string)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// AttrsValidator parses an --attrs spec and rejects unknown snapshot fields.
func AttrsValidator(value any) error {
	var al attrs.AttrList
	if err := al.Set(value.(string)); err != nil {
		return err
	}
	return al.Validate(output.SnapshotFields...)
}

func PositiveValidator(value any) error {
	if value.(int) < 1 {
		return errors.New("must be at least 1")
	}
	return nil
}

// ArgsValidator checks that cmd got exactly n positional arguments, none of
// which look like a jammed flag.
func ArgsValidator(cmd *cli.Command, n int) error {
	if cmd.NArg() != n {
		return fmt.Errorf("%s expects %d argument(s), got %d", cmd.Name, n, cmd.NArg())
	}
	for _, a := range cmd.Args().Slice() {
		if err := JammedFlagValidator(a); err != nil {
			return fmt.Errorf("argument %q %w", a, err)
		}
	}
	return nil
}
