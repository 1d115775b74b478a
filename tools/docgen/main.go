// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/urfave/cli/v3"

	"github.com/staranto/protoctl/internal/command"
)

// Minimal doc generator. Walks the protoctl command tree and generates:
//   - docs/man/share/man1/protoctl-<cmd>.1 via md2man
//   - docs/tldr/protoctl-<cmd>.md from the usage line

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	manOutDir := filepath.Join(repoRoot, "docs", "man", "share", "man1")
	tldrOutDir := filepath.Join(repoRoot, "docs", "tldr")

	if err := os.MkdirAll(manOutDir, 0o755); err != nil {
		fatalf("creating man output dir: %v", err)
	}
	if err := os.MkdirAll(tldrOutDir, 0o755); err != nil {
		fatalf("creating tldr output dir: %v", err)
	}

	app, err := command.InitApp(context.Background(), []string{"protoctl"})
	if err != nil {
		fatalf("building command tree: %v", err)
	}

	var processed int
	for _, cmd := range app.Commands {
		if cmd.Hidden {
			continue
		}

		manBytes := md2man.Render([]byte(commandMarkdown(cmd)))
		manPath := filepath.Join(manOutDir, fmt.Sprintf("protoctl-%s.1", cmd.Name))
		if err := writeFileIfChanged(manPath, manBytes, writeOnlyIfChanged); err != nil {
			fatalf("writing man page for %s: %v", cmd.Name, err)
		}

		tldrPath := filepath.Join(tldrOutDir, fmt.Sprintf("protoctl-%s.md", cmd.Name))
		if err := writeFileIfChanged(tldrPath, []byte(buildTLDR(cmd)), writeOnlyIfChanged); err != nil {
			fatalf("writing TLDR for %s: %v", cmd.Name, err)
		}

		processed++
	}

	if processed == 0 {
		fatalf("no commands found")
	}
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

func writeFileIfChanged(path string, new []byte, onlyIfChanged bool) error {
	if !onlyIfChanged {
		return os.WriteFile(path, new, 0o644)
	}
	old, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.WriteFile(path, new, 0o644)
		}
		return err
	}
	if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(new)) {
		return nil
	}
	return os.WriteFile(path, new, 0o644)
}

// commandMarkdown renders cmd as a man style markdown document.
func commandMarkdown(cmd *cli.Command) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# protoctl-%s 1\n\n", cmd.Name)
	b.WriteString("## NAME\n\n")
	fmt.Fprintf(&b, "protoctl-%s - %s\n\n", cmd.Name, cmd.Usage)

	if cmd.UsageText != "" {
		b.WriteString("## SYNOPSIS\n\n")
		fmt.Fprintf(&b, "`%s`\n\n", sanitizeCommand(cmd.UsageText))
	}

	if len(cmd.Flags) > 0 {
		b.WriteString("## OPTIONS\n\n")
		for _, f := range cmd.Flags {
			names := make([]string, 0, len(f.Names()))
			for _, n := range f.Names() {
				if len(n) == 1 {
					names = append(names, "-"+n)
				} else {
					names = append(names, "--"+n)
				}
			}
			fmt.Fprintf(&b, "**%s**\n: %s\n\n", strings.Join(names, ", "), flagUsage(f))
		}
	}

	return b.String()
}

func flagUsage(f cli.Flag) string {
	if u, ok := f.(interface{ GetUsage() string }); ok {
		return u.GetUsage()
	}
	return ""
}

func buildTLDR(cmd *cli.Command) string {
	var b strings.Builder
	b.WriteString("# protoctl-" + cmd.Name + "\n\n")
	if cmd.Usage != "" {
		b.WriteString("> " + cmd.Usage + ".\n")
	} else {
		b.WriteString("> protoctl " + cmd.Name + "\n")
	}
	b.WriteString("> More information: `protoctl " + cmd.Name + " --help`.\n\n")

	if cmd.UsageText != "" {
		b.WriteString("- Run the command:\n\n")
		b.WriteString("`" + sanitizeCommand(cmd.UsageText) + "`\n\n")
	}

	b.WriteString("- Show help for the command:\n\n")
	b.WriteString("`protoctl " + cmd.Name + " --help`\n")
	return b.String()
}

func sanitizeCommand(s string) string {
	// Compress runs of whitespace.
	return strings.Join(strings.Fields(s), " ")
}
