// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prototype

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Prototype is anything that can mint a copy of itself.
type Prototype interface {
	// Clone returns a new instance of the same variant holding equal, but
	// independently owned, state.
	Clone() Prototype
	// Describe renders key, value and the variant specific extra attribute.
	Describe() string
	Variant() Variant
	Key() string
	Value() int
	Snapshot() Snapshot
}

// Snapshot is a plain value view of a Prototype used for rendering and
// diffing.
type Snapshot struct {
	Instance string            `json:"instance" yaml:"instance"`
	Variant  string            `json:"variant" yaml:"variant"`
	Key      string            `json:"key" yaml:"key"`
	Value    int               `json:"value" yaml:"value"`
	Extra    int               `json:"extra" yaml:"extra"`
	Labels   map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// base carries the state shared by every variant. key and value are only
// set at construction or by copying.
type base struct {
	id     uuid.UUID
	key    string
	value  int
	labels map[string]string
}

func newBase(key string, value int) base {
	return base{
		id:    uuid.New(),
		key:   key,
		value: value,
	}
}

// copyBase duplicates src into a fresh base with its own instance ID. A nil
// src yields an empty base.
func copyBase(src *base) base {
	b := base{id: uuid.New()}
	if src == nil {
		return b
	}
	b.key = src.key
	b.value = src.value
	b.labels = maps.Clone(src.labels)
	return b
}

// ID is informational only. Identity checks compare pointers, not IDs.
func (b *base) ID() uuid.UUID {
	return b.id
}

func (b *base) Key() string {
	return b.key
}

func (b *base) Value() int {
	return b.value
}

// Label returns the label stored under name.
func (b *base) Label(name string) (string, bool) {
	v, ok := b.labels[name]
	return v, ok
}

// SetLabel sets a label on this instance only.
func (b *base) SetLabel(name, value string) {
	if b.labels == nil {
		b.labels = make(map[string]string)
	}
	b.labels[name] = value
}

// Labels returns a copy of the label set.
func (b *base) Labels() map[string]string {
	return maps.Clone(b.labels)
}

func (b *base) describe(extraName string, extra int) string {
	s := fmt.Sprintf("key: %s, value: %d, %s: %d", b.key, b.value, extraName, extra)
	if len(b.labels) == 0 {
		return s
	}

	names := slices.Sorted(maps.Keys(b.labels))
	pairs := make([]string, 0, len(names))
	for _, n := range names {
		pairs = append(pairs, n+"="+b.labels[n])
	}
	return s + ", labels: {" + strings.Join(pairs, ", ") + "}"
}

func (b *base) snapshot(v Variant, extra int) Snapshot {
	return Snapshot{
		Instance: b.id.String(),
		Variant:  v.String(),
		Key:      b.key,
		Value:    b.value,
		Extra:    extra,
		Labels:   maps.Clone(b.labels),
	}
}
