// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/protoctl/internal/meta"
	"github.com/staranto/protoctl/internal/output"
	"github.com/staranto/protoctl/internal/prototype"
)

// CreateCommandAction clones the exemplar under KEY --count times. Each
// clone is compared with the stored exemplar and with the clone before it.
func CreateCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := ArgsValidator(cmd, 1); err != nil {
		return err
	}
	key := cmd.Args().First()

	count := int(cmd.Int("count"))
	if err := FlagValidators(count, PositiveValidator); err != nil {
		return fmt.Errorf("--count %w", err)
	}

	reg, err := GetRegistry(cmd)
	if err != nil {
		return err
	}

	var (
		report output.CloneReport
		prev   prototype.Prototype
	)
	for i := 1; i <= count; i++ {
		name := humanize.Ordinal(i) + " clone"
		log.Debugf("creating %s of %s", name, key)

		p, err := reg.Create(key)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", key, err)
		}
		report.Clones = append(report.Clones, p.Snapshot())

		cmp, err := reg.CompareWithStored(key, p)
		if err != nil {
			return err
		}
		report.Comparisons = append(report.Comparisons, output.ComparisonRow{
			Left:       name,
			Right:      key,
			Comparison: cmp,
		})

		if prev != nil {
			report.Comparisons = append(report.Comparisons, output.ComparisonRow{
				Left:       name,
				Right:      humanize.Ordinal(i-1) + " clone",
				Comparison: reg.CompareClones(p, prev),
			})
		}
		prev = p
	}

	return output.Report(Writer(cmd), report, OutputOptions(cmd))
}

// CreateCommandBuilder constructs the cli.Command for "create".
func CreateCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "create",
		Usage:     "clone a registered exemplar",
		UsageText: "protoctl create KEY [options]",
		Flags: []cli.Flag{
			NewCountFlag(meta.Config.Source),
		},
		Action: CreateCommandAction,
		Meta:   meta,
	}).Build()
}
