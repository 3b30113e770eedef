// Package expr models the linear combinations a rank-1 constraint is made
// of, implemented in the style of gnark `frontend/internal/expr`.
package expr

import "github.com/consensys/gnark/constraint"

// LinearCombination is a weighted sum of variables forming one operand of a
// single constraint.
type LinearCombination []Term

// NewConstant returns c
func NewConstant(c constraint.Element) LinearCombination {
	return LinearCombination{NewTerm(0, c)}
}

// NewLinear returns c * v
func NewLinear(v int, c constraint.Element) LinearCombination {
	return LinearCombination{NewTerm(v, c)}
}

func (lc LinearCombination) Clone() LinearCombination {
	res := make(LinearCombination, len(lc))
	copy(res, lc)
	return res
}

// Len returns the number of terms (implements sort.Interface)
func (lc LinearCombination) Len() int {
	return len(lc)
}

// Swap swaps two terms (implements sort.Interface)
func (lc LinearCombination) Swap(i, j int) {
	lc[i], lc[j] = lc[j], lc[i]
}

// Less orders terms by variable id (implements sort.Interface)
func (lc LinearCombination) Less(i, j int) bool {
	return lc[i].VID < lc[j].VID
}

// Equal returns true if both SORTED linear combinations are the same
//
// pre conditions: lc and o are sorted
func (lc LinearCombination) Equal(o LinearCombination) bool {
	if len(lc) != len(o) {
		return false
	}
	for i := 0; i < len(lc); i++ {
		if lc[i] != o[i] {
			return false
		}
	}
	return true
}

func (lc LinearCombination) IsConstant() bool {
	for _, term := range lc {
		if term.VID != 0 {
			return false
		}
	}
	return true
}
