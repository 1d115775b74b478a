// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/protoctl/internal/meta"
	"github.com/staranto/protoctl/internal/output"
	"github.com/staranto/protoctl/internal/prototype"
)

// ListCommandAction renders every registered exemplar, in registration
// order, after applying --filter.
func ListCommandAction(ctx context.Context, cmd *cli.Command) error {
	reg, err := GetRegistry(cmd)
	if err != nil {
		return err
	}

	snapshots := make([]prototype.Snapshot, 0, reg.Len())
	for _, key := range reg.List() {
		s, err := reg.Snapshot(key)
		if err != nil {
			return err
		}
		snapshots = append(snapshots, s)
	}

	snapshots = output.FilterSnapshots(snapshots, cmd.String("filter"))
	log.Debugf("listing %d of %d exemplars", len(snapshots), reg.Len())

	opts := OutputOptions(cmd)
	opts.Attrs = BuildAttrs(cmd, output.SnapshotFields...)

	return output.Snapshots(Writer(cmd), snapshots, opts)
}

// ListCommandBuilder constructs the cli.Command for "list".
func ListCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "list",
		Usage:     "list registered exemplars",
		UsageText: "protoctl list [options]",
		Action:    ListCommandAction,
		Meta:      meta,
		Flags:     []cli.Flag{NewAttrsFlag("list", meta.Config.Source)},
	}).Build()
}
