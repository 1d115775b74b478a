// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prototype

import (
	"fmt"
	"maps"
	"strings"
)

// Variant names the concrete type behind a Prototype. The set is closed.
type Variant int

const (
	VariantKindA Variant = iota + 1
	VariantKindB
)

func (v Variant) String() string {
	switch v {
	case VariantKindA:
		return "A"
	case VariantKindB:
		return "B"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant accepts "a" or "b" in any case.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return VariantKindA, nil
	case "B":
		return VariantKindB, nil
	}
	return 0, fmt.Errorf("unknown variant %q, must be one of [a b]", s)
}

// VariantA is a Prototype carrying one extra integer, ExtraA.
type VariantA struct {
	base
	ExtraA int
}

// NewVariantA builds a VariantA with ExtraA left unset.
func NewVariantA(key string, value int) *VariantA {
	return &VariantA{base: newBase(key, value)}
}

// NewVariantAFrom copies src into a new VariantA. A nil src leaves every
// field at its zero value.
func NewVariantAFrom(src *VariantA) *VariantA {
	if src == nil {
		return &VariantA{base: copyBase(nil)}
	}
	return &VariantA{
		base:   copyBase(&src.base),
		ExtraA: src.ExtraA,
	}
}

func (p *VariantA) Clone() Prototype {
	return NewVariantAFrom(p)
}

func (p *VariantA) Describe() string {
	return p.describe("extraA", p.ExtraA)
}

func (p *VariantA) Variant() Variant {
	return VariantKindA
}

func (p *VariantA) Snapshot() Snapshot {
	return p.snapshot(VariantKindA, p.ExtraA)
}

// VariantB is a Prototype carrying one extra integer, ExtraB.
type VariantB struct {
	base
	ExtraB int
}

// NewVariantB builds a VariantB with ExtraB left unset.
func NewVariantB(key string, value int) *VariantB {
	return &VariantB{base: newBase(key, value)}
}

// NewVariantBFrom copies src into a new VariantB. A nil src leaves every
// field at its zero value.
func NewVariantBFrom(src *VariantB) *VariantB {
	if src == nil {
		return &VariantB{base: copyBase(nil)}
	}
	return &VariantB{
		base:   copyBase(&src.base),
		ExtraB: src.ExtraB,
	}
}

func (p *VariantB) Clone() Prototype {
	return NewVariantBFrom(p)
}

func (p *VariantB) Describe() string {
	return p.describe("extraB", p.ExtraB)
}

func (p *VariantB) Variant() Variant {
	return VariantKindB
}

func (p *VariantB) Snapshot() Snapshot {
	return p.snapshot(VariantKindB, p.ExtraB)
}

// New builds a Prototype of the given variant with its extra attribute and
// a copy of labels set.
func New(v Variant, key string, value, extra int, labels map[string]string) (Prototype, error) {
	switch v {
	case VariantKindA:
		p := NewVariantA(key, value)
		p.ExtraA = extra
		p.labels = maps.Clone(labels)
		return p, nil
	case VariantKindB:
		p := NewVariantB(key, value)
		p.ExtraB = extra
		p.labels = maps.Clone(labels)
		return p, nil
	}
	return nil, fmt.Errorf("cannot build prototype of %s", v)
}
