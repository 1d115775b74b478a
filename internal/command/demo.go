// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/protoctl/internal/demo"
	"github.com/staranto/protoctl/internal/meta"
)

// DemoCommandAction narrates the clone and compare scenario on a registry of
// its own, ignoring any configured exemplars.
func DemoCommandAction(ctx context.Context, cmd *cli.Command) error {
	return demo.Run(Writer(cmd))
}

// DemoCommandBuilder constructs the cli.Command for "demo".
func DemoCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "demo",
		Usage:     "walk through cloning and comparing prototypes",
		UsageText: "protoctl demo",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: DemoCommandAction,
	}
}
