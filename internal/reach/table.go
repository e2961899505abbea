// Package reach enumerates every value that can be built from a fixed
// number of copies of one digit with +, -, * and / under any
// parenthesization, and finds the first non-negative integer that cannot.
package reach

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// MaxCount bounds the group size. 9^12 still fits in int64 with room for
// the sums and products of two sub-results.
const MaxCount = 12

var (
	ErrInvalidDigit  = errors.New("digit must be between 0 and 9")
	ErrInvalidCount  = fmt.Errorf("count must be between 1 and %d", MaxCount)
	ErrUnknownPolicy = errors.New("unknown division policy")
)

type valueSet map[int64]struct{}

// Table holds S[0..count]: S[k] is the set of values reachable with
// exactly k copies of the digit.
type Table struct {
	digit int
	count int
	sets  []valueSet
}

// Base returns the one-digit set before any combination: the literal and
// its negation.
func Base(digit int) []int64 {
	d := int64(digit)
	if d == 0 {
		return []int64{0}
	}
	return []int64{-d, d}
}

// Build fills the table bottom-up.
//
// For every left size i the values of S[i] are combined with S[j-i] for
// each j from i to count, and the results go into S[j]. Both operand sets
// are snapshotted (sorted) before their loop starts, so values added while
// iterating are only seen by later snapshots. When j == i the right side
// is S[0] = {0}, which puts a+0, a-0 and a*0 back into S[i].
func Build(digit, count int, div Divider) (*Table, error) {
	if digit < 0 || digit > 9 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDigit, digit)
	}
	if count < 1 || count > MaxCount {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if div == nil {
		return nil, fmt.Errorf("%w: nil divider", ErrUnknownPolicy)
	}

	t := &Table{
		digit: digit,
		count: count,
		sets:  make([]valueSet, count+1),
	}
	for k := range t.sets {
		t.sets[k] = make(valueSet)
	}
	t.sets[0][0] = struct{}{}
	for _, v := range Base(digit) {
		t.sets[1][v] = struct{}{}
	}

	for i := 1; i <= count; i++ {
		for _, a := range t.snapshot(i) {
			for j := i; j <= count; j++ {
				dst := t.sets[j]
				for _, b := range t.snapshot(j - i) {
					dst[a+b] = struct{}{}
					dst[a-b] = struct{}{}
					dst[a*b] = struct{}{}
					if b == 0 {
						continue
					}
					if q, ok := div(a, b); ok {
						dst[q] = struct{}{}
					}
				}
			}
		}
	}
	return t, nil
}

func (t *Table) snapshot(k int) []int64 {
	return slices.Sorted(maps.Keys(t.sets[k]))
}

func (t *Table) Digit() int { return t.digit }
func (t *Table) Count() int { return t.count }

// Len returns |S[k]|, or 0 when k is out of range.
func (t *Table) Len(k int) int {
	if k < 0 || k > t.count {
		return 0
	}
	return len(t.sets[k])
}

// Values returns S[k] in ascending order.
func (t *Table) Values(k int) []int64 {
	if k < 0 || k > t.count {
		return nil
	}
	return t.snapshot(k)
}

func (t *Table) Contains(k int, v int64) bool {
	if k < 0 || k > t.count {
		return false
	}
	_, ok := t.sets[k][v]
	return ok
}

// Sizes returns |S[k]| for k = 0..count.
func (t *Table) Sizes() []int {
	out := make([]int, len(t.sets))
	for k, s := range t.sets {
		out[k] = len(s)
	}
	return out
}

// FirstGap returns the smallest n >= 0 that is not in S[count].
func (t *Table) FirstGap() int64 {
	full := t.sets[t.count]
	var n int64
	for {
		if _, ok := full[n]; !ok {
			return n
		}
		n++
	}
}

// Reachable reports whether target can be built from exactly count digits.
func (t *Table) Reachable(target int64) bool {
	return t.Contains(t.count, target)
}
