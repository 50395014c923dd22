// Package mercurial implements the Mercurial Signature scheme (Crites &
// Lysyanskaya) over BN254, in its two role-swapped variants: Primary
// (public keys in G2, messages in G1) and Dual (public keys in G1,
// messages in G2). Package dac composes the two into a delegatable
// credential chain.
package mercurial

import (
	"errors"
	"fmt"

	"github.com/agni-datta/Mercurial-Signatures/group"
)

// SecretKey is an ordered sequence of scalars, shared structure between
// both variants.
type SecretKey []group.Scalar

// ErrLengthMismatch signals a caller bug: a public key, secret key,
// message, or conversion input had the wrong length. This is an
// invariant violation, not a rejectable input, so it panics rather than
// returning an error.
var ErrLengthMismatch = errors.New("mercurial: length mismatch")

func requireLen(name string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("mercurial: %s has length %d, want %d: %v", name, got, want, ErrLengthMismatch))
	}
}

// ConvertSecretKey returns [rho*x_i for x_i in sk]. Identical for both
// variants since secret keys are plain scalar sequences in either one.
func ConvertSecretKey(sk SecretKey, rho group.Scalar) SecretKey {
	out := make(SecretKey, len(sk))
	for i, x := range sk {
		out[i] = group.ScalarMul(x, rho)
	}
	return out
}
