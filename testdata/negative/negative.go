// Package negative holds programs that must fail type checking. The
// directory sits under testdata so the module build ignores it; the
// negative-compilation test loads it explicitly and requires errors.
package negative

import (
	"os"

	ipfmt "github.com/MatthewNaumenko/otus-homework4"
)

// heterogeneousTuple must not resolve: Tuple4[uint8, uint8, uint8, string]
// does not unify with Uniform4's Tuple4[T, T, T, T].
func heterogeneousTuple() {
	t := ipfmt.Tuple4[uint8, uint8, uint8, string]{A: 127, B: 0, C: 0, D: "1"}
	_ = ipfmt.Write(os.Stdout, ipfmt.Uniform4(t))
}

// unclassifiedScalar must not resolve: bool is outside the Integer
// constraint and matches no other category.
func unclassifiedScalar() {
	_ = ipfmt.Write(os.Stdout, ipfmt.Int(true))
}
