// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package demo

import (
	"fmt"
	"io"

	"github.com/apex/log"

	"github.com/staranto/protoctl/internal/prototype"
	"github.com/staranto/protoctl/internal/registry"
)

const (
	// SecondKey is the exemplar the scenario adds next to registry.DefaultKey.
	SecondKey = "PROTOTYPE_2"

	secondValue = 2
	secondExtra = 22
)

// narrator writes lines and remembers the first write error so the scenario
// reads top to bottom.
type narrator struct {
	w   io.Writer
	err error
}

func (n *narrator) printf(format string, args ...any) {
	if n.err != nil {
		return
	}
	_, n.err = fmt.Fprintf(n.w, format+"\n", args...)
}

func (n *narrator) list(reg *registry.Registry) {
	n.printf("Listing available prototypes:")
	for _, key := range reg.List() {
		n.printf("- %s", key)
	}
}

func (n *narrator) create(reg *registry.Registry, key string) (prototype.Prototype, error) {
	n.printf("Creating prototype: %s", key)
	p, err := reg.Create(key)
	if err != nil {
		return nil, err
	}
	n.printf("%s", p.Describe())

	cmp, err := reg.CompareWithStored(key, p)
	if err != nil {
		return nil, err
	}
	n.printf("Comparing with prototype:")
	n.compared(cmp)
	return p, nil
}

func (n *narrator) compareClones(reg *registry.Registry, a, b prototype.Prototype) {
	n.printf("Comparing with clone:")
	n.compared(reg.CompareClones(a, b))
}

func (n *narrator) compared(cmp prototype.Comparison) {
	n.printf("- %s", cmp.SameObjects())
	n.printf("- %s", cmp.Identical())
}

// Populate puts the VariantB exemplar the scenario works with under
// SecondKey.
func Populate(reg *registry.Registry) {
	second := prototype.NewVariantB(SecondKey, secondValue)
	second.ExtraB = secondExtra
	reg.Put(SecondKey, second)
}

// Run builds a registry, adds a VariantB exemplar under SecondKey, then
// clones every exemplar twice and reports how the copies compare.
func Run(w io.Writer) error {
	n := &narrator{w: w}
	reg := registry.New()
	n.list(reg)

	n.printf("Putting prototype <%s>", SecondKey)
	Populate(reg)
	n.list(reg)

	clones := make(map[string][2]prototype.Prototype, 2)
	for _, key := range []string{registry.DefaultKey, SecondKey} {
		n.printf("")
		n.printf("======%s======", key)

		var pair [2]prototype.Prototype
		for i := range pair {
			if i > 0 {
				n.printf("")
			}
			p, err := n.create(reg, key)
			if err != nil {
				return fmt.Errorf("demo failed for %s: %w", key, err)
			}
			pair[i] = p
		}

		n.printf("")
		n.compareClones(reg, pair[0], pair[1])
		clones[key] = pair
	}

	n.printf("")
	n.printf("======DIFF======")
	for i := range 2 {
		n.compareClones(reg, clones[registry.DefaultKey][i], clones[SecondKey][i])
	}

	if n.err != nil {
		log.Errorf("demo output failed: %v", n.err)
	}
	return n.err
}
