package mercurial

import (
	"github.com/agni-datta/Mercurial-Signatures/group"
)

// PrimaryPublicKey is a sequence of G2 points, X_i = x_i * p-hat.
type PrimaryPublicKey []group.G2Point

// PrimaryMessage is a sequence of G1 points, the opposite group from a
// primary public key.
type PrimaryMessage []group.G1Point

// PrimarySignature is the (z, y, y-hat) triple for the primary variant:
// z, y in G1; y-hat in G2.
type PrimarySignature struct {
	Z    group.G1Point
	Y    group.G1Point
	YHat group.G2Point
}

// Primary is the Mercurial signature scheme with public keys in G2 and
// messages in G1.
type Primary struct{}

// KeyGen samples a fresh primary-variant key pair of length ell.
func (Primary) KeyGen(ell int) (PrimaryPublicKey, SecretKey, error) {
	pk := make(PrimaryPublicKey, ell)
	sk := make(SecretKey, ell)
	phat := group.G2Generator()
	for i := 0; i < ell; i++ {
		x, err := group.RandomScalar()
		if err != nil {
			return nil, nil, err
		}
		sk[i] = x
		pk[i] = group.ScalarMulG2(phat, x)
	}
	return pk, sk, nil
}

// Sign produces a primary-variant signature over msg under sk.
func (Primary) Sign(sk SecretKey, msg PrimaryMessage) (PrimarySignature, error) {
	requireLen("secret key", len(sk), len(msg))

	y, err := group.NonZeroRandomScalar()
	if err != nil {
		return PrimarySignature{}, err
	}

	var sigma group.G1Point
	sigma = group.ScalarMulG1(msg[0], sk[0])
	for i := 1; i < len(sk); i++ {
		sigma = group.AddG1(sigma, group.ScalarMulG1(msg[i], sk[i]))
	}

	z := group.ScalarMulG1(sigma, y)

	yInv, err := group.ScalarInverse(y)
	if err != nil {
		return PrimarySignature{}, err
	}
	yPoint := group.ScalarMulG1(group.G1Generator(), yInv)
	yHat := group.ScalarMulG2(group.G2Generator(), yInv)

	return PrimarySignature{Z: z, Y: yPoint, YHat: yHat}, nil
}

// Verify checks a primary-variant signature against pk and msg. It
// never errors; an invalid signature verifies to false. A pk and msg
// of different lengths is a caller bug and panics.
func (Primary) Verify(pk PrimaryPublicKey, msg PrimaryMessage, sig PrimarySignature) bool {
	requireLen("public key", len(pk), len(msg))

	lhs, err := group.PairSingle(msg[0], pk[0])
	if err != nil {
		return false
	}
	for i := 1; i < len(pk); i++ {
		pi, err := group.PairSingle(msg[i], pk[i])
		if err != nil {
			return false
		}
		lhs.Mul(&lhs, &pi)
	}

	rhs, err := group.PairSingle(sig.Z, sig.YHat)
	if err != nil {
		return false
	}
	if !group.EqualGT(lhs, rhs) {
		return false
	}

	left2, err := group.PairSingle(group.G1Generator(), sig.YHat)
	if err != nil {
		return false
	}
	right2, err := group.PairSingle(sig.Y, group.G2Generator())
	if err != nil {
		return false
	}
	return group.EqualGT(left2, right2)
}

// ConvertPublicKey returns [rho*X_i for X_i in pk].
func (Primary) ConvertPublicKey(pk PrimaryPublicKey, rho group.Scalar) PrimaryPublicKey {
	out := make(PrimaryPublicKey, len(pk))
	for i, X := range pk {
		out[i] = group.ScalarMulG2(X, rho)
	}
	return out
}

// ConvertSignature re-randomises sig so it verifies under
// ConvertPublicKey(pk, rho) against the same message.
func (Primary) ConvertSignature(pk PrimaryPublicKey, msg PrimaryMessage, sig PrimarySignature, rho group.Scalar) (PrimarySignature, error) {
	psi, err := group.NonZeroRandomScalar()
	if err != nil {
		return PrimarySignature{}, err
	}
	psiInv, err := group.ScalarInverse(psi)
	if err != nil {
		return PrimarySignature{}, err
	}

	psiRho := group.ScalarMul(psi, rho)
	return PrimarySignature{
		Z:    group.ScalarMulG1(sig.Z, psiRho),
		Y:    group.ScalarMulG1(sig.Y, psiInv),
		YHat: group.ScalarMulG2(sig.YHat, psiInv),
	}, nil
}

// ChangeRepresentation rescales msg by mu and returns a signature that
// verifies the rescaled message under the same pk.
func (Primary) ChangeRepresentation(pk PrimaryPublicKey, msg PrimaryMessage, sig PrimarySignature, mu group.Scalar) (PrimaryMessage, PrimarySignature, error) {
	psi, err := group.NonZeroRandomScalar()
	if err != nil {
		return nil, PrimarySignature{}, err
	}
	psiInv, err := group.ScalarInverse(psi)
	if err != nil {
		return nil, PrimarySignature{}, err
	}

	newMsg := make(PrimaryMessage, len(msg))
	for i, m := range msg {
		newMsg[i] = group.ScalarMulG1(m, mu)
	}

	psiMu := group.ScalarMul(psi, mu)
	newSig := PrimarySignature{
		Z:    group.ScalarMulG1(sig.Z, psiMu),
		Y:    group.ScalarMulG1(sig.Y, psiInv),
		YHat: group.ScalarMulG2(sig.YHat, psiInv),
	}
	return newMsg, newSig, nil
}

// ConvertSecretKey returns [rho*x_i for x_i in sk].
func (Primary) ConvertSecretKey(sk SecretKey, rho group.Scalar) SecretKey {
	return ConvertSecretKey(sk, rho)
}

// HashMessage maps a byte string deterministically to a G1 point,
// suitable for use as a message entry.
func (Primary) HashMessage(msg []byte) group.G1Point {
	return group.HashToG1(msg)
}
