// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/staranto/protoctl/internal/prototype"
)

// newScenarioRegistry builds the two-exemplar registry used by the demo.
func newScenarioRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New()
	b := prototype.NewVariantB("PROTOTYPE_2", 2)
	b.ExtraB = 22
	r.Put("PROTOTYPE_2", b)
	return r
}

func TestNew_DefaultExemplar(t *testing.T) {
	r := New()

	assert.Equal(t, []string{DefaultKey}, r.List())
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Has(DefaultKey))

	s, err := r.Snapshot(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "A", s.Variant)
	assert.Equal(t, 11, s.Extra)
	assert.Equal(t, 1, s.Value)
}

func TestNew_InstancesDoNotShareState(t *testing.T) {
	r1 := New()
	r2 := New()
	r1.Put("ONLY_HERE", prototype.NewVariantB("ONLY_HERE", 0))

	assert.True(t, r1.Has("ONLY_HERE"))
	assert.False(t, r2.Has("ONLY_HERE"))
}

func TestCreate(t *testing.T) {
	r := newScenarioRegistry(t)

	for _, key := range r.List() {
		t.Run(key, func(t *testing.T) {
			p, err := r.Create(key)
			require.NoError(t, err)

			cmp, err := r.CompareWithStored(key, p)
			require.NoError(t, err)
			assert.False(t, cmp.Identity, "clone must not be the stored exemplar")
			assert.True(t, cmp.StructurallyEqual)
		})
	}
}

func TestCreate_UnknownKey(t *testing.T) {
	r := New()

	p, err := r.Create("NOPE")
	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, IsKeyNotFound(err))
}

func TestCompareWithStored(t *testing.T) {
	r := New()
	stored := prototype.NewVariantA("SELF", 5)
	r.Put("SELF", stored)

	cmp, err := r.CompareWithStored("SELF", stored)
	require.NoError(t, err)
	assert.Equal(t, prototype.Comparison{Identity: true, StructurallyEqual: true}, cmp)

	_, err = r.CompareWithStored("NOPE", stored)
	assert.True(t, IsKeyNotFound(err))
}

func TestPut_OverwriteKeepsOrder(t *testing.T) {
	r := newScenarioRegistry(t)
	r.Put("PROTOTYPE_3", prototype.NewVariantA("PROTOTYPE_3", 3))

	replacement := prototype.NewVariantB(DefaultKey, 100)
	replacement.ExtraB = 7
	r.Put(DefaultKey, replacement)

	assert.Equal(t, []string{DefaultKey, "PROTOTYPE_2", "PROTOTYPE_3"}, r.List())
	assert.Equal(t, 3, r.Len())

	p, err := r.Create(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, prototype.VariantKindB, p.Variant())
	assert.Equal(t, 7, p.Snapshot().Extra)
}

func TestList_ReturnsCopy(t *testing.T) {
	r := New()
	keys := r.List()
	keys[0] = "MUTATED"
	assert.Equal(t, []string{DefaultKey}, r.List())
}

func TestSnapshot_UnknownKey(t *testing.T) {
	_, err := New().Snapshot("NOPE")
	assert.True(t, IsKeyNotFound(err))
}

func TestPut_NilIgnored(t *testing.T) {
	r := New()

	assert.False(t, r.Put("X", nil))
	assert.False(t, r.Put("Y", (*prototype.VariantB)(nil)))
	assert.False(t, r.Has("X"))
	assert.False(t, r.Has("Y"))
	assert.Equal(t, []string{DefaultKey}, r.List())

	_, err := r.Create("X")
	assert.True(t, IsKeyNotFound(err))
	_, err = r.CompareWithStored("Y", prototype.NewVariantB("Y", 1))
	assert.True(t, IsKeyNotFound(err))

	// A nil put never clobbers a stored exemplar.
	assert.False(t, r.Put(DefaultKey, nil))
	p, err := r.Create(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, DefaultKey, p.Key())
}

func TestCompareClones_TypedNil(t *testing.T) {
	r := New()
	p, err := r.Create(DefaultKey)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.Equal(t, prototype.Comparison{}, r.CompareClones(p, (*prototype.VariantA)(nil)))
	})
}

// TestScenario walks the narrated demo and checks every reported result.
func TestScenario(t *testing.T) {
	r := newScenarioRegistry(t)

	p1, err := r.Create("PROTOTYPE_1")
	require.NoError(t, err)
	p2, err := r.Create("PROTOTYPE_1")
	require.NoError(t, err)

	assert.Equal(t, "key: PROTOTYPE_1, value: 1, extraA: 11", p1.Describe())
	assert.Equal(t, "key: PROTOTYPE_1, value: 1, extraA: 11", p2.Describe())
	assert.Equal(t, prototype.Comparison{StructurallyEqual: true}, r.CompareClones(p1, p2))

	p3, err := r.Create("PROTOTYPE_2")
	require.NoError(t, err)
	p4, err := r.Create("PROTOTYPE_2")
	require.NoError(t, err)

	assert.Equal(t, 22, p3.(*prototype.VariantB).ExtraB)
	assert.Equal(t, 22, p4.(*prototype.VariantB).ExtraB)
	assert.Equal(t, prototype.Comparison{StructurallyEqual: true}, r.CompareClones(p3, p4))

	assert.False(t, r.CompareClones(p1, p3).StructurallyEqual)
	assert.False(t, r.CompareClones(p2, p4).StructurallyEqual)
}

func TestCreate_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := New()
		n := rapid.IntRange(1, 8).Draw(rt, "n")
		for i := 0; i < n; i++ {
			key := rapid.StringMatching(`K[0-9]{1,3}`).Draw(rt, "key")
			extra := rapid.Int().Draw(rt, "extra")
			p, _ := prototype.New(prototype.VariantKindB, key, i, extra, nil)
			r.Put(key, p)
		}

		for _, key := range r.List() {
			a, err := r.Create(key)
			if err != nil {
				rt.Fatalf("Create(%q): %v", key, err)
			}
			b, _ := r.Create(key)

			if cmp := r.CompareClones(a, b); cmp.Identity || !cmp.StructurallyEqual {
				rt.Fatalf("clones of %q compare as %+v", key, cmp)
			}
			stored, _ := r.Snapshot(key)
			if a.Snapshot().Extra != stored.Extra {
				rt.Fatalf("clone extra %d != stored %d", a.Snapshot().Extra, stored.Extra)
			}
		}
	})
}
