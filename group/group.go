// Package group adapts the BN254 Type-III pairing (gnark-crypto's
// ecc/bn254) to the small vocabulary the Mercurial signature and DAC
// layers need: a scalar field, scalar multiplication and addition in
// the two source groups, a pairing product, and a hash to G1.
//
// Everything above this package treats Scalar/G1Point/G2Point/GT as
// opaque values; no caller reaches into gnark-crypto directly.
package group

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// Scalar is an element of Z_r, the BN254 scalar field.
type Scalar = fr.Element

// G1Point and G2Point are affine points on the two source groups.
type G1Point = bn254.G1Affine

// G2Point is an affine point on the second source group.
type G2Point = bn254.G2Affine

// GT is an element of the pairing target group.
type GT = bn254.GT

// ErrZeroScalar is returned by ScalarInverse when asked to invert zero.
// Sampled scalars that must be non-zero come from NonZeroRandomScalar,
// which resamples instead of returning this error.
var ErrZeroScalar = errors.New("group: sampled scalar is zero")

// RandomScalar draws a uniformly random element of Z_r from a
// cryptographically secure source.
func RandomScalar() (Scalar, error) {
	var s Scalar
	if _, err := s.SetRandom(); err != nil {
		return Scalar{}, err
	}
	return s, nil
}

// NonZeroRandomScalar draws a random scalar, resampling in the
// negligible-probability event it lands on zero: a zero scaling factor
// would degenerate whatever conversion or blinding it is used for
// (an inverse that doesn't exist, a signature collapsed to the
// identity). It only returns an error if the underlying random source
// itself fails.
func NonZeroRandomScalar() (Scalar, error) {
	for {
		s, err := RandomScalar()
		if err != nil {
			return Scalar{}, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
}

// ScalarInverse returns s^-1 mod r.
func ScalarInverse(s Scalar) (Scalar, error) {
	if s.IsZero() {
		return Scalar{}, ErrZeroScalar
	}
	var out Scalar
	out.Inverse(&s)
	return out, nil
}

// ScalarMul returns a*b mod r.
func ScalarMul(a, b Scalar) Scalar {
	var out Scalar
	out.Mul(&a, &b)
	return out
}

// ScalarOrder returns r, the order of the scalar field (and of G1, G2).
func ScalarOrder() *big.Int {
	return fr.Modulus()
}

// G1Generator returns the fixed generator p of G1.
func G1Generator() G1Point {
	_, _, g1, _ := bn254.Generators()
	return g1
}

// G2Generator returns the fixed generator p-hat of G2.
func G2Generator() G2Point {
	_, _, _, g2 := bn254.Generators()
	return g2
}

// ScalarMulG1 returns s*p for a point p in G1.
func ScalarMulG1(p G1Point, s Scalar) G1Point {
	var out G1Point
	out.ScalarMultiplication(&p, s.BigInt(new(big.Int)))
	return out
}

// ScalarMulG2 returns s*p for a point p in G2.
func ScalarMulG2(p G2Point, s Scalar) G2Point {
	var out G2Point
	out.ScalarMultiplication(&p, s.BigInt(new(big.Int)))
	return out
}

// AddG1 returns a+b in G1.
func AddG1(a, b G1Point) G1Point {
	var out G1Point
	out.Add(&a, &b)
	return out
}

// AddG2 returns a+b in G2.
func AddG2(a, b G2Point) G2Point {
	var out G2Point
	out.Add(&a, &b)
	return out
}

// EqualG1 reports whether a and b are the same point in G1.
func EqualG1(a, b G1Point) bool {
	return a.Equal(&b)
}

// EqualG2 reports whether a and b are the same point in G2.
func EqualG2(a, b G2Point) bool {
	return a.Equal(&b)
}

// Pair computes the product pairing prod_i e(g1s[i], g2s[i]). Both
// slices must have equal, positive length.
func Pair(g1s []G1Point, g2s []G2Point) (GT, error) {
	return bn254.Pair(g1s, g2s)
}

// PairSingle computes e(a, b) for a single pair of points.
func PairSingle(a G1Point, b G2Point) (GT, error) {
	return bn254.Pair([]G1Point{a}, []G2Point{b})
}

// EqualGT reports whether a and b are the same element of the target group.
func EqualGT(a, b GT) bool {
	return a.Equal(&b)
}

// hashToG1DomainTag separates this hash from any other use of SHAKE-256
// over the same message bytes elsewhere in the system.
const hashToG1DomainTag = "mercurial-dac/bn254/hash-to-g1/v1/"

// curveB is the BN254 G1 curve coefficient: y^2 = x^3 + 3.
var curveB = func() fp.Element {
	var b fp.Element
	b.SetUint64(3)
	return b
}()

// HashToG1 maps an arbitrary byte string to a point in G1, deterministically
// and with (up to negligible probability) no collisions: a SHAKE-256 digest
// is interpreted as a candidate x-coordinate; if x is not on the curve, x is
// incremented and retried. BN254's G1 cofactor is 1 (the full curve order
// over F_p is exactly r), so any point satisfying the curve equation already
// lies in the prime-order subgroup and needs no further cofactor clearing.
func HashToG1(msg []byte) G1Point {
	shake := sha3.NewShake256()
	shake.Write([]byte(hashToG1DomainTag))
	shake.Write(msg)

	digest := make([]byte, fp.Bytes)
	var one fp.Element
	one.SetOne()

	for {
		if _, err := shake.Read(digest); err != nil {
			// SHAKE-256's sponge never runs out of output; a read error
			// here means the standard library itself is broken.
			panic("group: SHAKE-256 read failed: " + err.Error())
		}

		var x fp.Element
		x.SetBytes(digest)

		for {
			var x3, rhs, y fp.Element
			x3.Square(&x)
			x3.Mul(&x3, &x)
			rhs.Add(&x3, &curveB)
			if y.Sqrt(&rhs) != nil {
				return G1Point{X: x, Y: y}
			}
			x.Add(&x, &one)
		}
	}
}

// HashToG2 stands in for a real hash to G2: gnark-crypto's G2 coordinate
// type lives in a package this module cannot import, so the
// trial-and-increment construction HashToG1 uses has no reproducible
// equivalent here. Instead this samples a fresh random scalar and
// multiplies the G2 generator by it.
//
// This is NOT a real hash: it is non-deterministic (the same message
// maps to a different point on every call) and the returned point has a
// known discrete log relative to the generator. It must not be used to
// hash attacker-influenced messages in a deployment that needs
// unforgeability against chosen-message attacks; see DESIGN.md.
func HashToG2() (G2Point, error) {
	s, err := RandomScalar()
	if err != nil {
		return G2Point{}, err
	}
	return ScalarMulG2(G2Generator(), s), nil
}
