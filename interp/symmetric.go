package interp

import (
	"fmt"
	"math"
)

// Symmetry describes how a table's stored samples extend to the full
// angular domain.
type Symmetry int

const (
	// SymmetryNone stores the full domain; no folding is applied.
	SymmetryNone Symmetry = 1
	// SymmetryMirror stores one side of a pattern symmetric about 0;
	// Lookup folds the key to |key| before interpolating.
	SymmetryMirror Symmetry = 2
	// SymmetryQuadrant stores one quadrant [0, pi/2] of a pattern with
	// four-fold rotational symmetry; Lookup reduces the key into that
	// quadrant before interpolating.
	SymmetryQuadrant Symmetry = 4
)

// Valid reports whether s is one of the three defined symmetry codes.
func (s Symmetry) Valid() bool {
	switch s {
	case SymmetryNone, SymmetryMirror, SymmetryQuadrant:
		return true
	default:
		return false
	}
}

// SymmetricTable wraps a [Table] with a symmetry code, folding an
// out-of-range key into the stored domain before delegating to the
// underlying table's bisection and interpolation.
type SymmetricTable[V Value] struct {
	*Table[V]
	symmetry Symmetry
}

// NewSymmetric wraps table with the given symmetry code. It returns an
// error if the code isn't one of SymmetryNone/Mirror/Quadrant, per the
// RangeInvariant error kind in the pattern package's taxonomy.
func NewSymmetric[V Value](table *Table[V], symmetry Symmetry) (*SymmetricTable[V], error) {
	if !symmetry.Valid() {
		return nil, fmt.Errorf("interp: symmetry code %d not in {1,2,4}", symmetry)
	}
	return &SymmetricTable[V]{Table: table, symmetry: symmetry}, nil
}

// Symmetry returns the table's symmetry code.
func (t *SymmetricTable[V]) Symmetry() Symmetry {
	return t.symmetry
}

// Lookup folds key per the table's symmetry code, then interpolates.
func (t *SymmetricTable[V]) Lookup(key float64) V {
	return t.Table.Lookup(t.fold(key))
}

func (t *SymmetricTable[V]) fold(key float64) float64 {
	switch t.symmetry {
	case SymmetryMirror:
		return math.Abs(key)
	case SymmetryQuadrant:
		return foldQuadrant(key)
	default:
		return key
	}
}

// foldQuadrant reduces key to [0, pi/2] for a pattern that is
// mirror-symmetric about 0 and about pi/2: |key| is taken modulo pi and
// then folded about pi/2 (so e.g. key=3pi/4 reads the same stored
// sample as key=pi/4).
func foldQuadrant(key float64) float64 {
	const quarter = math.Pi / 2
	rem := math.Mod(math.Abs(key), math.Pi)
	if rem > quarter {
		rem = math.Pi - rem
	}
	return rem
}
