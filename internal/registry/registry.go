// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"slices"

	"github.com/apex/log"

	"github.com/staranto/protoctl/internal/prototype"
)

const (
	// DefaultKey is the exemplar every Registry starts with.
	DefaultKey = "PROTOTYPE_1"

	defaultValue = 1
	defaultExtra = 11
)

// Registry maps keys to exemplars it owns.
type Registry struct {
	exemplars map[string]prototype.Prototype
	// order keeps List stable. A key is appended the first time it is put.
	order []string
}

// New returns a Registry seeded with a VariantA exemplar under DefaultKey.
func New() *Registry {
	r := &Registry{
		exemplars: make(map[string]prototype.Prototype),
	}

	seed := prototype.NewVariantA(DefaultKey, defaultValue)
	seed.ExtraA = defaultExtra
	r.Put(DefaultKey, seed)

	return r
}

// Create clones the exemplar stored under key. The result is never the
// stored instance itself.
func (r *Registry) Create(key string) (prototype.Prototype, error) {
	log.Debugf("creating prototype: %s", key)

	p, ok := r.exemplars[key]
	if !ok {
		return nil, NewKeyNotFoundError(key)
	}
	return p.Clone(), nil
}

// List returns the registered keys in insertion order.
func (r *Registry) List() []string {
	return slices.Clone(r.order)
}

// Put stores p under key, replacing any previous exemplar. The registry
// takes ownership of p. A nil p is ignored and reported as false.
func (r *Registry) Put(key string, p prototype.Prototype) bool {
	log.Debugf("putting prototype <%s>", key)

	if prototype.IsNil(p) {
		log.Warnf("refusing nil prototype for <%s>", key)
		return false
	}

	if _, exists := r.exemplars[key]; !exists {
		r.order = append(r.order, key)
	}
	r.exemplars[key] = p
	return true
}

// Has reports whether key has an exemplar.
func (r *Registry) Has(key string) bool {
	_, ok := r.exemplars[key]
	return ok
}

func (r *Registry) Len() int {
	return len(r.exemplars)
}

// Snapshot returns a snapshot of the exemplar under key without cloning it.
func (r *Registry) Snapshot(key string) (prototype.Snapshot, error) {
	p, ok := r.exemplars[key]
	if !ok {
		return prototype.Snapshot{}, NewKeyNotFoundError(key)
	}
	return p.Snapshot(), nil
}

// CompareWithStored compares candidate with the exemplar under key.
func (r *Registry) CompareWithStored(key string, candidate prototype.Prototype) (prototype.Comparison, error) {
	p, ok := r.exemplars[key]
	if !ok {
		return prototype.Comparison{}, NewKeyNotFoundError(key)
	}
	return prototype.Compare(p, candidate), nil
}

// CompareClones compares two arbitrary prototypes. It never fails.
func (r *Registry) CompareClones(a, b prototype.Prototype) prototype.Comparison {
	return prototype.Compare(a, b)
}
