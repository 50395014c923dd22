package mercurial

import (
	"github.com/agni-datta/Mercurial-Signatures/group"
)

// DualPublicKey is a sequence of G1 points, X_i = x_i * p.
type DualPublicKey []group.G1Point

// DualMessage is a sequence of G2 points, the opposite group from a
// dual public key.
type DualMessage []group.G2Point

// DualSignature is the (z, y, y-hat) triple for the dual variant: z, y
// in G2; y-hat in G1 (groups swapped relative to PrimarySignature).
type DualSignature struct {
	Z    group.G2Point
	Y    group.G2Point
	YHat group.G1Point
}

// Dual is the Mercurial signature scheme with public keys in G1 and
// messages in G2 — the role-swapped counterpart of Primary.
type Dual struct{}

// KeyGen samples a fresh dual-variant key pair of length ell.
func (Dual) KeyGen(ell int) (DualPublicKey, SecretKey, error) {
	pk := make(DualPublicKey, ell)
	sk := make(SecretKey, ell)
	p := group.G1Generator()
	for i := 0; i < ell; i++ {
		x, err := group.RandomScalar()
		if err != nil {
			return nil, nil, err
		}
		sk[i] = x
		pk[i] = group.ScalarMulG1(p, x)
	}
	return pk, sk, nil
}

// Sign produces a dual-variant signature over msg under sk.
func (Dual) Sign(sk SecretKey, msg DualMessage) (DualSignature, error) {
	requireLen("secret key", len(sk), len(msg))

	y, err := group.NonZeroRandomScalar()
	if err != nil {
		return DualSignature{}, err
	}

	sigma := group.ScalarMulG2(msg[0], sk[0])
	for i := 1; i < len(sk); i++ {
		sigma = group.AddG2(sigma, group.ScalarMulG2(msg[i], sk[i]))
	}

	z := group.ScalarMulG2(sigma, y)

	yInv, err := group.ScalarInverse(y)
	if err != nil {
		return DualSignature{}, err
	}
	yPoint := group.ScalarMulG2(group.G2Generator(), yInv)
	yHat := group.ScalarMulG1(group.G1Generator(), yInv)

	return DualSignature{Z: z, Y: yPoint, YHat: yHat}, nil
}

// Verify checks a dual-variant signature against pk and msg. It never
// errors; an invalid signature verifies to false.
func (Dual) Verify(pk DualPublicKey, msg DualMessage, sig DualSignature) bool {
	requireLen("public key", len(pk), len(msg))

	lhs, err := group.PairSingle(pk[0], msg[0])
	if err != nil {
		return false
	}
	for i := 1; i < len(pk); i++ {
		pi, err := group.PairSingle(pk[i], msg[i])
		if err != nil {
			return false
		}
		lhs.Mul(&lhs, &pi)
	}

	rhs, err := group.PairSingle(sig.YHat, sig.Z)
	if err != nil {
		return false
	}
	if !group.EqualGT(lhs, rhs) {
		return false
	}

	left2, err := group.PairSingle(sig.YHat, group.G2Generator())
	if err != nil {
		return false
	}
	right2, err := group.PairSingle(group.G1Generator(), sig.Y)
	if err != nil {
		return false
	}
	return group.EqualGT(left2, right2)
}

// ConvertPublicKey returns [rho*X_i for X_i in pk].
func (Dual) ConvertPublicKey(pk DualPublicKey, rho group.Scalar) DualPublicKey {
	out := make(DualPublicKey, len(pk))
	for i, X := range pk {
		out[i] = group.ScalarMulG1(X, rho)
	}
	return out
}

// ConvertSignature re-randomises sig so it verifies under
// ConvertPublicKey(pk, rho) against the same message.
func (Dual) ConvertSignature(pk DualPublicKey, msg DualMessage, sig DualSignature, rho group.Scalar) (DualSignature, error) {
	psi, err := group.NonZeroRandomScalar()
	if err != nil {
		return DualSignature{}, err
	}
	psiInv, err := group.ScalarInverse(psi)
	if err != nil {
		return DualSignature{}, err
	}

	psiRho := group.ScalarMul(psi, rho)
	return DualSignature{
		Z:    group.ScalarMulG2(sig.Z, psiRho),
		Y:    group.ScalarMulG2(sig.Y, psiInv),
		YHat: group.ScalarMulG1(sig.YHat, psiInv),
	}, nil
}

// ChangeRepresentation rescales msg by mu and returns a signature that
// verifies the rescaled message under the same pk.
func (Dual) ChangeRepresentation(pk DualPublicKey, msg DualMessage, sig DualSignature, mu group.Scalar) (DualMessage, DualSignature, error) {
	psi, err := group.NonZeroRandomScalar()
	if err != nil {
		return nil, DualSignature{}, err
	}
	psiInv, err := group.ScalarInverse(psi)
	if err != nil {
		return nil, DualSignature{}, err
	}

	newMsg := make(DualMessage, len(msg))
	for i, m := range msg {
		newMsg[i] = group.ScalarMulG2(m, mu)
	}

	psiMu := group.ScalarMul(psi, mu)
	newSig := DualSignature{
		Z:    group.ScalarMulG2(sig.Z, psiMu),
		Y:    group.ScalarMulG2(sig.Y, psiInv),
		YHat: group.ScalarMulG1(sig.YHat, psiInv),
	}
	return newMsg, newSig, nil
}

// ConvertSecretKey returns [rho*x_i for x_i in sk].
func (Dual) ConvertSecretKey(sk SecretKey, rho group.Scalar) SecretKey {
	return ConvertSecretKey(sk, rho)
}

// HashMessage maps a byte string to a G2 point. Unlike Primary's
// HashMessage, this is not a real hash: see group.HashToG2's doc
// comment and DESIGN.md for why, and for the boundary this places on
// where dual-variant messages may safely come from.
func (Dual) HashMessage(_ []byte) (group.G2Point, error) {
	return group.HashToG2()
}
