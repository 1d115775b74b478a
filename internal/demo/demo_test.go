// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package demo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/protoctl/internal/registry"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf))
	out := buf.String()

	assert.Contains(t, out, "Listing available prototypes:\n- PROTOTYPE_1\nPutting prototype <PROTOTYPE_2>\n")
	assert.Contains(t, out, "- PROTOTYPE_1\n- PROTOTYPE_2\n")

	assert.Equal(t, 2, strings.Count(out, "key: PROTOTYPE_1, value: 1, extraA: 11\n"))
	assert.Equal(t, 2, strings.Count(out, "key: PROTOTYPE_2, value: 2, extraB: 22\n"))

	// Every clone differs from its exemplar by identity only.
	assert.Equal(t, 4, strings.Count(out, "Comparing with prototype:\n- Different objects\n- Identical\n"))
	assert.Equal(t, 2, strings.Count(out, "Comparing with clone:\n- Different objects\n- Identical\n"))
	assert.NotContains(t, out, "Same objects")

	_, diff, found := strings.Cut(out, "======DIFF======\n")
	require.True(t, found)
	assert.Equal(t, "Comparing with clone:\n- Different objects\n- Not Identical\n"+
		"Comparing with clone:\n- Different objects\n- Not Identical\n", diff)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRun_WriteError(t *testing.T) {
	err := Run(failingWriter{})
	assert.EqualError(t, err, "disk full")
}

func TestPopulate(t *testing.T) {
	reg := registry.New()
	Populate(reg)

	assert.Equal(t, []string{registry.DefaultKey, SecondKey}, reg.List())
	s, err := reg.Snapshot(SecondKey)
	require.NoError(t, err)
	assert.Equal(t, "B", s.Variant)
	assert.Equal(t, 22, s.Extra)
}
