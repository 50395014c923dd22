package mercurial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agni-datta/Mercurial-Signatures/group"
)

func randomDualMessage(t *testing.T, ell int) DualMessage {
	t.Helper()
	msg := make(DualMessage, ell)
	for i := range msg {
		s, err := group.NonZeroRandomScalar()
		require.NoError(t, err)
		msg[i] = group.ScalarMulG2(group.G2Generator(), s)
	}
	return msg
}

func TestDualSignVerifyRoundTrip(t *testing.T) {
	var scheme Dual
	for _, ell := range []int{2, 3, 4, 5} {
		pk, sk, err := scheme.KeyGen(ell)
		require.NoError(t, err)

		msg := randomDualMessage(t, ell)
		sig, err := scheme.Sign(sk, msg)
		require.NoError(t, err)

		require.True(t, scheme.Verify(pk, msg, sig), "ell=%d: freshly signed message must verify", ell)
	}
}

func TestDualVerifyRejectsWrongMessage(t *testing.T) {
	var scheme Dual
	pk, sk, err := scheme.KeyGen(3)
	require.NoError(t, err)

	msg := randomDualMessage(t, 3)
	sig, err := scheme.Sign(sk, msg)
	require.NoError(t, err)

	other := randomDualMessage(t, 3)
	require.False(t, scheme.Verify(pk, other, sig))
}

func TestDualConvertKeyAndSignatureRoundTrip(t *testing.T) {
	var scheme Dual
	pk, sk, err := scheme.KeyGen(3)
	require.NoError(t, err)

	msg := randomDualMessage(t, 3)
	sig, err := scheme.Sign(sk, msg)
	require.NoError(t, err)

	rho, err := group.NonZeroRandomScalar()
	require.NoError(t, err)

	pk2 := scheme.ConvertPublicKey(pk, rho)
	sig2, err := scheme.ConvertSignature(pk, msg, sig, rho)
	require.NoError(t, err)

	require.True(t, scheme.Verify(pk2, msg, sig2), "converted signature must verify under converted key")
	require.False(t, scheme.Verify(pk, msg, sig2), "converted signature must not verify under the original key")
}

func TestDualChangeRepresentationRoundTrip(t *testing.T) {
	var scheme Dual
	pk, sk, err := scheme.KeyGen(3)
	require.NoError(t, err)

	msg := randomDualMessage(t, 3)
	sig, err := scheme.Sign(sk, msg)
	require.NoError(t, err)

	mu, err := group.NonZeroRandomScalar()
	require.NoError(t, err)

	newMsg, newSig, err := scheme.ChangeRepresentation(pk, msg, sig, mu)
	require.NoError(t, err)

	require.True(t, scheme.Verify(pk, newMsg, newSig), "rescaled message must verify under the same key")
	require.False(t, scheme.Verify(pk, msg, newSig), "rescaled signature must not verify the original message")
}

// Unlike Primary's hash, Dual's HashMessage is explicitly non-deterministic
// (group.HashToG2's doc comment) — only inequality across independent draws
// is meaningful here, never a determinism check.
func TestDualHashMessageProducesDistinctPoints(t *testing.T) {
	var scheme Dual
	a, err := scheme.HashMessage([]byte("credential-1"))
	require.NoError(t, err)
	b, err := scheme.HashMessage([]byte("credential-1"))
	require.NoError(t, err)
	require.False(t, group.EqualG2(a, b), "HashToG2 is randomised, so repeated calls should not collide")
}

func TestDualLengthMismatchPanics(t *testing.T) {
	var scheme Dual
	_, sk, err := scheme.KeyGen(3)
	require.NoError(t, err)

	msg := randomDualMessage(t, 2)
	require.Panics(t, func() {
		_, _ = scheme.Sign(sk, msg)
	})
}
