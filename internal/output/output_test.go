// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/staranto/protoctl/internal/attrs"
	"github.com/staranto/protoctl/internal/prototype"
)

func testSnapshots() []prototype.Snapshot {
	return []prototype.Snapshot{
		{Instance: "id-1", Variant: "A", Key: "PROTOTYPE_1", Value: 1, Extra: 11},
		{Instance: "id-2", Variant: "B", Key: "PROTOTYPE_2", Value: 2, Extra: 22,
			Labels: map[string]string{"zone": "eu", "app": "web"}},
	}
}

func TestSnapshots_Text(t *testing.T) {
	var buf bytes.Buffer
	err := Snapshots(&buf, testSnapshots(), Options{Format: "text", Titles: true})
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3, "expected header and two rows, got:\n%s", out)

	assert.Contains(t, lines[0], "key")
	assert.Contains(t, lines[0], "extra")
	assert.Contains(t, out, "PROTOTYPE_1")
	assert.Contains(t, out, "22")
	assert.Contains(t, out, "app=web,zone=eu")
}

func TestSnapshots_TextWithoutTitles(t *testing.T) {
	var buf bytes.Buffer
	err := Snapshots(&buf, testSnapshots(), Options{})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "instance")
	assert.Contains(t, buf.String(), "PROTOTYPE_2")
}

func TestSnapshots_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := Snapshots(&buf, nil, Options{Format: "text"})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestSnapshots_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := Snapshots(&buf, testSnapshots(), Options{Format: "json"})
	require.NoError(t, err)

	var got []prototype.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testSnapshots(), got)
}

func TestSnapshots_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := Snapshots(&buf, testSnapshots(), Options{Format: "yaml"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "key: PROTOTYPE_1")
	assert.NotContains(t, strings.SplitN(buf.String(), "- ", 3)[1], "labels", "empty labels should be omitted")

	var got []prototype.Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testSnapshots(), got)
}

func TestComparisons(t *testing.T) {
	rows := []ComparisonRow{
		{Left: "PROTOTYPE_1/1", Right: "PROTOTYPE_1/2", Comparison: prototype.Comparison{StructurallyEqual: true}},
		{Left: "PROTOTYPE_1/1", Right: "PROTOTYPE_2/1"},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Comparisons(&buf, rows, Options{Format: "text"}))
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "Different objects")
		assert.Contains(t, lines[0], "Identical")
		assert.NotContains(t, lines[0], "Not Identical")
		assert.Contains(t, lines[1], "Not Identical")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Comparisons(&buf, rows, Options{Format: "json"}))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, false, got[0]["identity"])
		assert.Equal(t, true, got[0]["structurallyEqual"])
		assert.Equal(t, "PROTOTYPE_2/1", got[1]["right"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Comparisons(&buf, rows, Options{Format: "yaml"}))
		assert.Contains(t, buf.String(), "structurallyEqual: true")
		assert.Contains(t, buf.String(), "left: PROTOTYPE_1/1")
	})
}

func TestSpit_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Snapshots(&buf, testSnapshots(), Options{Format: "raw"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "-", labelString(nil))
	assert.Equal(t, "a=1,b=2", labelString(map[string]string{"b": "2", "a": "1"}))
}

func TestReport(t *testing.T) {
	report := CloneReport{
		Clones: testSnapshots()[:1],
		Comparisons: []ComparisonRow{
			{Left: "1st clone", Right: "exemplar", Comparison: prototype.Comparison{StructurallyEqual: true}},
		},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Report(&buf, report, Options{Format: "text"}))
		parts := strings.Split(buf.String(), "\n\n")
		require.Len(t, parts, 2)
		assert.Contains(t, parts[0], "PROTOTYPE_1")
		assert.Contains(t, parts[1], "1st clone")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Report(&buf, report, Options{Format: "json"}))

		var got CloneReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, report, got)
	})
}

func TestSnapshots_Attrs(t *testing.T) {
	var al attrs.AttrList
	require.NoError(t, al.Set("key:name:l,variant,!variant,labels"))

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Snapshots(&buf, testSnapshots(), Options{Titles: true, Attrs: al}))

		out := buf.String()
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.GreaterOrEqual(t, len(lines), 3, out)
		assert.Contains(t, lines[0], "name")
		assert.Contains(t, lines[0], "labels")
		assert.NotContains(t, out, "variant")
		assert.NotContains(t, out, "id-1")
		assert.Contains(t, out, "prototype_1")
		assert.NotContains(t, out, "PROTOTYPE_1")
		assert.Contains(t, out, "app=web,zone=eu")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Snapshots(&buf, testSnapshots(), Options{Format: "json", Attrs: al}))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "prototype_2", got[1]["name"])
		assert.Equal(t, map[string]any{"zone": "eu", "app": "web"}, got[1]["labels"])
		assert.NotContains(t, got[0], "variant")
	})

	t.Run("unknown attr", func(t *testing.T) {
		var bad attrs.AttrList
		require.NoError(t, bad.Set("bogus"))
		var buf bytes.Buffer
		assert.Error(t, Snapshots(&buf, testSnapshots(), Options{Attrs: bad}))
	})
}
