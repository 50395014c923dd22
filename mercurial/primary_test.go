package mercurial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agni-datta/Mercurial-Signatures/group"
)

func randomPrimaryMessage(t *testing.T, ell int) PrimaryMessage {
	t.Helper()
	msg := make(PrimaryMessage, ell)
	for i := range msg {
		s, err := group.NonZeroRandomScalar()
		require.NoError(t, err)
		msg[i] = group.ScalarMulG1(group.G1Generator(), s)
	}
	return msg
}

func TestPrimarySignVerifyRoundTrip(t *testing.T) {
	var scheme Primary
	for _, ell := range []int{2, 3, 4, 5} {
		pk, sk, err := scheme.KeyGen(ell)
		require.NoError(t, err)

		msg := randomPrimaryMessage(t, ell)
		sig, err := scheme.Sign(sk, msg)
		require.NoError(t, err)

		require.True(t, scheme.Verify(pk, msg, sig), "ell=%d: freshly signed message must verify", ell)
	}
}

func TestPrimaryVerifyRejectsWrongMessage(t *testing.T) {
	var scheme Primary
	pk, sk, err := scheme.KeyGen(3)
	require.NoError(t, err)

	msg := randomPrimaryMessage(t, 3)
	sig, err := scheme.Sign(sk, msg)
	require.NoError(t, err)

	other := randomPrimaryMessage(t, 3)
	require.False(t, scheme.Verify(pk, other, sig))
}

func TestPrimaryConvertKeyAndSignatureRoundTrip(t *testing.T) {
	var scheme Primary
	pk, sk, err := scheme.KeyGen(3)
	require.NoError(t, err)

	msg := randomPrimaryMessage(t, 3)
	sig, err := scheme.Sign(sk, msg)
	require.NoError(t, err)

	rho, err := group.NonZeroRandomScalar()
	require.NoError(t, err)

	pk2 := scheme.ConvertPublicKey(pk, rho)
	sig2, err := scheme.ConvertSignature(pk, msg, sig, rho)
	require.NoError(t, err)

	require.True(t, scheme.Verify(pk2, msg, sig2), "converted signature must verify under converted key")
	require.False(t, scheme.Verify(pk, msg, sig2), "converted signature must not verify under the original key")

	sk2 := scheme.ConvertSecretKey(sk, rho)
	require.Equal(t, len(sk), len(sk2))
}

func TestPrimaryChangeRepresentationRoundTrip(t *testing.T) {
	var scheme Primary
	pk, sk, err := scheme.KeyGen(3)
	require.NoError(t, err)

	msg := randomPrimaryMessage(t, 3)
	sig, err := scheme.Sign(sk, msg)
	require.NoError(t, err)

	mu, err := group.NonZeroRandomScalar()
	require.NoError(t, err)

	newMsg, newSig, err := scheme.ChangeRepresentation(pk, msg, sig, mu)
	require.NoError(t, err)

	require.True(t, scheme.Verify(pk, newMsg, newSig), "rescaled message must verify under the same key")
	require.False(t, scheme.Verify(pk, msg, newSig), "rescaled signature must not verify the original message")
}

func TestPrimaryHashMessageDeterministic(t *testing.T) {
	var scheme Primary
	a := scheme.HashMessage([]byte("credential-1"))
	b := scheme.HashMessage([]byte("credential-1"))
	require.True(t, group.EqualG1(a, b))

	c := scheme.HashMessage([]byte("credential-2"))
	require.False(t, group.EqualG1(a, c))
}

func TestPrimaryLengthMismatchPanics(t *testing.T) {
	var scheme Primary
	_, sk, err := scheme.KeyGen(3)
	require.NoError(t, err)

	msg := randomPrimaryMessage(t, 2)
	require.Panics(t, func() {
		_, _ = scheme.Sign(sk, msg)
	})
}
