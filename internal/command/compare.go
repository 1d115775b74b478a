// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/protoctl/internal/differ"
	"github.com/staranto/protoctl/internal/meta"
	"github.com/staranto/protoctl/internal/output"
)

// CompareCommandAction clones one exemplar per key and reports how the two
// clones compare. --diff adds a field level diff of the two.
func CompareCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 2); err != nil {
		return err
	}
	leftKey, rightKey := cmd.Args().Get(0), cmd.Args().Get(1)

	reg, err := GetRegistry(cmd)
	if err != nil {
		return err
	}

	left, err := reg.Create(leftKey)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", leftKey, err)
	}
	right, err := reg.Create(rightKey)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", rightKey, err)
	}

	w := Writer(cmd)
	opts := OutputOptions(cmd)
	rows := []output.ComparisonRow{{
		Left:       leftKey,
		Right:      rightKey,
		Comparison: reg.CompareClones(left, right),
	}}
	if err := output.Comparisons(w, rows, opts); err != nil {
		return err
	}

	if !cmd.Bool("diff") {
		return nil
	}

	diff, changed, err := differ.Diff(left.Snapshot(), right.Snapshot(), differ.Options{
		IgnoreInstance: !cmd.Bool("instance"),
		Color:          opts.Color,
	})
	if err != nil {
		return err
	}
	if !changed {
		_, err = fmt.Fprintln(w, "no differences")
		return err
	}
	_, err = fmt.Fprint(w, diff)
	return err
}

// CompareCommandBuilder constructs the cli.Command for "compare".
func CompareCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "compare",
		Usage:     "compare clones of two exemplars",
		UsageText: "protoctl compare KEY1 KEY2 [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "show a field level diff of the two clones",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "instance",
				Usage: "include instance IDs in the diff",
				Value: false,
			},
		},
		Action: CompareCommandAction,
		Meta:   meta,
	}).Build()
}
