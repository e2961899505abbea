package reach

import (
	"fmt"
	"strings"
)

// Divider は a/b の商を返す。ok=false ならその組み合わせは捨てる。
// b == 0 の場合は Build 側で除外されるので呼ばれない。
type Divider func(a, b int64) (q int64, ok bool)

// policy names
const (
	PolicyFloor = "floor"
	PolicyTrunc = "trunc"
	PolicyExact = "exact"
)

// FloorDivision rounds the quotient toward negative infinity and always
// accepts it, even when the division is inexact.
func FloorDivision(a, b int64) (int64, bool) {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q, true
}

// TruncatingDivision rounds toward zero and always accepts.
func TruncatingDivision(a, b int64) (int64, bool) {
	return a / b, true
}

// ExactDivision accepts only quotients with a zero remainder.
func ExactDivision(a, b int64) (int64, bool) {
	if a%b != 0 {
		return 0, false
	}
	return a / b, true
}

// ParsePolicy returns the Divider registered under name.
func ParsePolicy(name string) (Divider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyFloor:
		return FloorDivision, nil
	case PolicyTrunc:
		return TruncatingDivision, nil
	case PolicyExact:
		return ExactDivision, nil
	}
	return nil, fmt.Errorf("%w: %q (want %s, %s or %s)", ErrUnknownPolicy, name, PolicyFloor, PolicyTrunc, PolicyExact)
}
