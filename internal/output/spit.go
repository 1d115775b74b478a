// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v2"

	"github.com/staranto/protoctl/internal/attrs"
	"github.com/staranto/protoctl/internal/config"
	"github.com/staranto/protoctl/internal/prototype"
)

// Formats lists the values accepted by --output.
var Formats = []string{"text", "json", "yaml"}

// Options controls how a result set is rendered.
type Options struct {
	Format string
	Titles bool
	Color  bool
	// Attrs selects, renames and transforms snapshot columns. Nil means
	// every field under its own name.
	Attrs attrs.AttrList
}

// SnapshotFields are the snapshot fields addressable by --attrs and
// --filter.
var SnapshotFields = []string{"key", "variant", "value", "extra", "labels", "instance"}

// ComparisonRow is one reported comparison between two named sides.
type ComparisonRow struct {
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`
	prototype.Comparison `yaml:",inline"`
}

// Snapshots renders one row per prototype snapshot.
func Snapshots(w io.Writer, snapshots []prototype.Snapshot, opts Options) error {
	if len(opts.Attrs) != 0 {
		return sliceDice(w, snapshots, opts)
	}

	var rows [][]string
	for _, s := range snapshots {
		rows = append(rows, []string{
			s.Key,
			s.Variant,
			strconv.Itoa(s.Value),
			strconv.Itoa(s.Extra),
			labelString(s.Labels),
			s.Instance,
		})
	}

	return spit(w, snapshots, SnapshotFields, rows, opts)
}

// sliceDice projects each snapshot onto the included attrs. Structured
// formats get one map per snapshot keyed by output key.
func sliceDice(w io.Writer, snapshots []prototype.Snapshot, opts Options) error {
	included := opts.Attrs.Included()

	headers := make([]string, 0, len(included))
	for _, a := range included {
		headers = append(headers, a.OutputKey)
	}

	var rows [][]string
	records := make([]map[string]any, 0, len(snapshots))
	for _, s := range snapshots {
		row := make([]string, 0, len(included))
		record := make(map[string]any, len(included))
		for _, a := range included {
			value, ok := snapshotField(s, a.Key)
			if !ok {
				return fmt.Errorf("unknown attr %q", a.Key)
			}
			record[a.OutputKey] = a.Transform(value)
			row = append(row, fmt.Sprint(a.Transform(cellString(value))))
		}
		rows = append(rows, row)
		records = append(records, record)
	}

	return spit(w, records, headers, rows, opts)
}

// cellString is the text form of a snapshot field.
func cellString(value any) string {
	switch v := value.(type) {
	case map[string]string:
		return labelString(v)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

// Comparisons renders identity and structural equality per row using the
// narration vocabulary in text mode.
func Comparisons(w io.Writer, results []ComparisonRow, opts Options) error {
	headers := []string{"left", "right", "identity", "structure"}

	var rows [][]string
	for _, r := range results {
		rows = append(rows, []string{r.Left, r.Right, r.SameObjects(), r.Identical()})
	}

	return spit(w, results, headers, rows, opts)
}

// CloneReport is what create emits: the clones and how they compare.
type CloneReport struct {
	Clones      []prototype.Snapshot `json:"clones" yaml:"clones"`
	Comparisons []ComparisonRow      `json:"comparisons" yaml:"comparisons"`
}

// Report renders a CloneReport as one document for json and yaml, or as two
// tables separated by a blank line for text.
func Report(w io.Writer, report CloneReport, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	if opts.Format != "" && opts.Format != "text" {
		return spit(w, report, nil, nil, opts)
	}

	if err := Snapshots(w, report.Clones, opts); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return Comparisons(w, report.Comparisons, opts)
}

// spit emits data as JSON or YAML, or rows as a table.
func spit(w io.Writer, data any, headers []string, rows [][]string, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json":
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "", "text":
		return TableWriter(w, headers, rows, opts)
	default:
		return fmt.Errorf("unknown output format %q, must be one of %v", opts.Format, Formats)
	}
}

// TableWriter renders rows in a tabular form honoring color, titles and
// padding options.
func TableWriter(w io.Writer, headers []string, rows [][]string, opts Options) error {
	if len(rows) == 0 {
		return nil
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 1)
	log.Debugf("padding: %v", pad)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	_, err := fmt.Fprintln(w, t)
	return err
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// labelString renders labels as sorted name=value pairs, or "-" when there
// are none.
func labelString(labels map[string]string) string {
	if len(labels) == 0 {
		return "-"
	}
	names := slices.Sorted(maps.Keys(labels))
	pairs := make([]string, 0, len(names))
	for _, n := range names {
		pairs = append(pairs, n+"="+labels[n])
	}
	return strings.Join(pairs, ",")
}
