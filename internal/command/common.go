// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/protoctl/internal/attrs"
	"github.com/staranto/protoctl/internal/config"
	"github.com/staranto/protoctl/internal/demo"
	"github.com/staranto/protoctl/internal/meta"
	"github.com/staranto/protoctl/internal/output"
	"github.com/staranto/protoctl/internal/prototype"
	"github.com/staranto/protoctl/internal/registry"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// GetRegistry returns the registry carried in the command's meta, building
// one from the config file otherwise.
func GetRegistry(cmd *cli.Command) (*registry.Registry, error) {
	if reg := GetMeta(cmd).Registry; reg != nil {
		return reg, nil
	}
	return NewRegistry()
}

// NewRegistry builds the registry every subcommand works against: the
// default exemplar, the demo's second exemplar and whatever the config file
// declares under "exemplars".
func NewRegistry() (*registry.Registry, error) {
	reg := registry.New()
	demo.Populate(reg)

	exemplars, err := config.Exemplars()
	if err != nil {
		return nil, err
	}

	for _, e := range exemplars {
		v, err := prototype.ParseVariant(e.Variant)
		if err != nil {
			return nil, fmt.Errorf("exemplar %s: %w", e.Key, err)
		}
		p, err := prototype.New(v, e.Key, e.Value, e.Extra, e.Labels)
		if err != nil {
			return nil, fmt.Errorf("exemplar %s: %w", e.Key, err)
		}
		reg.Put(e.Key, p)
	}
	log.Debugf("registry keys: %v", reg.List())

	return reg, nil
}

// BuildAttrs applies the --attrs flag on top of defaults. It returns nil when
// --attrs is not set so that the full snapshot is emitted.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	extras := cmd.String("attrs")
	if extras == "" {
		return nil
	}

	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		al.Set(extras)
		al.SetGlobalTransformSpec()
	}
	log.Debugf("attrs: %v", al.String())
	return
}

// OutputOptions collects the rendering flags from cmd.
func OutputOptions(cmd *cli.Command) output.Options {
	return output.Options{
		Format: cmd.String("output"),
		Titles: cmd.Bool("titles"),
		Color:  cmd.Bool("color"),
	}
}

// Writer is where subcommands send their results.
func Writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// CommandBuilder is a helper that constructs a cli.Command for the
// rendering subcommands (list, create, compare) using a consistent pattern.
// The builder wires metadata, applies global flags, and sets up validators.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: append(cb.Flags, NewGlobalFlags(cb.Name, cb.Meta.Config.Source)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			m := GetMeta(c)
			if len(m.Args) > 1 {
				log.Debugf("Executing action for %v", m.Args[1:])
			}
			return cb.Action(ctx, c)
		},
	}
}
