// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prototype

// Comparison keeps identity and structural equality apart.
type Comparison struct {
	// Identity is true when both sides are the very same instance.
	Identity bool `json:"identity" yaml:"identity"`
	// StructurallyEqual is true when both sides are the same variant and carry
	// the same key. Value and extra attributes are not considered.
	StructurallyEqual bool `json:"structurallyEqual" yaml:"structurallyEqual"`
}

// IsNil reports whether p is nil, including a nil *VariantA or *VariantB
// held in a non-nil interface.
func IsNil(p Prototype) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *VariantA:
		return v == nil
	case *VariantB:
		return v == nil
	}
	return false
}

// Compare reports how a relates to b. Two nils are identical and equal, a
// single nil is neither. Typed nils count as nil.
func Compare(a, b Prototype) Comparison {
	aNil, bNil := IsNil(a), IsNil(b)
	if aNil || bNil {
		both := aNil && bNil
		return Comparison{Identity: both, StructurallyEqual: both}
	}
	return Comparison{
		Identity:          a == b,
		StructurallyEqual: a.Variant() == b.Variant() && a.Key() == b.Key(),
	}
}

// SameObjects renders the identity half the way the narration expects.
func (c Comparison) SameObjects() string {
	if c.Identity {
		return "Same objects"
	}
	return "Different objects"
}

// Identical renders the structural half the way the narration expects.
func (c Comparison) Identical() string {
	if c.StructurallyEqual {
		return "Identical"
	}
	return "Not Identical"
}
