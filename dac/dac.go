package dac

import (
	"fmt"

	"github.com/agni-datta/Mercurial-Signatures/group"
	"github.com/agni-datta/Mercurial-Signatures/mercurial"
)

// DAC is a Delegatable Anonymous Credential root instance: a fixed key
// length and a dual-variant root key pair, immutable for its lifetime.
type DAC struct {
	ell       int
	initialPK mercurial.DualPublicKey
	initialSK mercurial.SecretKey
}

// New constructs a DAC instance with per-level key length ell,
// generating a fresh dual-variant root key pair. ell must be positive;
// a non-positive ell is a caller bug and panics.
func New(ell int) (*DAC, error) {
	if ell <= 0 {
		panic(fmt.Sprintf("dac: ell must be positive, got %d", ell))
	}
	var dual mercurial.Dual
	pk, sk, err := dual.KeyGen(ell)
	if err != nil {
		return nil, fmt.Errorf("dac: generating root key pair: %w", err)
	}
	return &DAC{ell: ell, initialPK: pk, initialSK: sk}, nil
}

// InitialPublicKey returns the root's own dual-variant public key. Not
// on the hot path of any chain operation — kept for introspection,
// since callers may want to display or log which root issued a chain.
func (d *DAC) InitialPublicKey() mercurial.DualPublicKey {
	return d.initialPK
}

// KeyGen generates one dual-variant and one primary-variant key pair.
// A user holds both: the primary pair yields pseudonyms for even chain
// indices, the dual pair pseudonyms for odd chain indices, since
// consecutive links must alternate variant to keep each signer's
// public-key group opposite the group its message lives in.
func (d *DAC) KeyGen() (dualPK mercurial.DualPublicKey, dualSK mercurial.SecretKey, primaryPK mercurial.PrimaryPublicKey, primarySK mercurial.SecretKey, err error) {
	var dual mercurial.Dual
	var primary mercurial.Primary

	dualPK, dualSK, err = dual.KeyGen(d.ell)
	if err != nil {
		err = fmt.Errorf("dac: generating dual key pair: %w", err)
		return
	}
	primaryPK, primarySK, err = primary.KeyGen(d.ell)
	if err != nil {
		err = fmt.Errorf("dac: generating primary key pair: %w", err)
		return
	}
	return
}

// NymGen re-randomises a dual and a primary key pair into one-shot
// pseudonyms, independently, returning the converted secret keys that
// correspond to each.
func (d *DAC) NymGen(dualPK mercurial.DualPublicKey, dualSK mercurial.SecretKey, primaryPK mercurial.PrimaryPublicKey, primarySK mercurial.SecretKey) (dualNym Pseudonym, dualSK2 mercurial.SecretKey, primaryNym Pseudonym, primarySK2 mercurial.SecretKey, err error) {
	var dual mercurial.Dual
	var primary mercurial.Primary

	dualRho, err := group.RandomScalar()
	if err != nil {
		err = fmt.Errorf("dac: sampling dual rho: %w", err)
		return
	}
	dualSK2 = dual.ConvertSecretKey(dualSK, dualRho)
	dualNym = NewDualPseudonym(dual.ConvertPublicKey(dualPK, dualRho))

	primaryRho, err := group.RandomScalar()
	if err != nil {
		err = fmt.Errorf("dac: sampling primary rho: %w", err)
		return
	}
	primarySK2 = primary.ConvertSecretKey(primarySK, primaryRho)
	primaryNym = NewPrimaryPseudonym(primary.ConvertPublicKey(primaryPK, primaryRho))
	return
}

// IssueFirst signs initialNym with the root's own dual-variant secret
// key, starting a chain of length 1. initialNym must be primary-variant:
// the root signs with a dual-variant key, and a dual signer's message
// must live in the opposite group, which is exactly what a
// primary-variant pseudonym is. A dual-variant initialNym is a caller
// bug and panics.
func (d *DAC) IssueFirst(initialNym Pseudonym) (*Chain, error) {
	if !initialNym.IsPrimary() {
		panic("dac: initial pseudonym must be primary-variant")
	}

	var dual mercurial.Dual
	msg := mercurial.DualMessage(initialNym.Primary())
	sig, err := dual.Sign(d.initialSK, msg)
	if err != nil {
		return nil, fmt.Errorf("dac: signing initial pseudonym: %w", err)
	}

	return &Chain{
		Nyms: []Pseudonym{initialNym},
		Sigs: []ChainSignature{NewDualChainSignature(sig)},
	}, nil
}

// IssueNext extends chain with newNym, signed by sk (the secret key
// matching the chain's current last pseudonym). It mutates and returns
// chain. The whole existing chain is re-randomised first so that the
// extended chain cannot be linked to its pre-extension appearance.
//
// newNym's variant must match the parity of the position it will
// occupy (even new chain index, i.e. odd new chain length =>
// primary-variant; odd new chain index => dual); a
// mismatch is a caller bug and panics, as does a pre-existing
// Nyms/Sigs length mismatch.
func (d *DAC) IssueNext(chain *Chain, newNym Pseudonym, sk mercurial.SecretKey) (*Chain, error) {
	n := len(chain.Nyms)
	if n != len(chain.Sigs) {
		panic(fmt.Sprintf("dac: chain has %d pseudonyms but %d signatures", n, len(chain.Sigs)))
	}

	var dual mercurial.Dual
	var primary mercurial.Primary

	rho, err := group.NonZeroRandomScalar()
	if err != nil {
		return nil, fmt.Errorf("dac: sampling rho for root link: %w", err)
	}

	rootMsg := mercurial.DualMessage(chain.Nyms[0].Primary())
	newNym0, newSig0, err := dual.ChangeRepresentation(d.initialPK, rootMsg, chain.Sigs[0].Dual(), rho)
	if err != nil {
		return nil, fmt.Errorf("dac: re-randomising root link: %w", err)
	}
	if !dual.Verify(d.initialPK, newNym0, newSig0) {
		panic("dac: re-randomised root link failed to verify")
	}
	chain.Nyms[0] = NewPrimaryPseudonym(mercurial.PrimaryPublicKey(newNym0))
	chain.Sigs[0] = NewDualChainSignature(newSig0)

	for i := 0; i < n-1; i++ {
		if i%2 == 0 {
			pk := chain.Nyms[i].Primary()
			msg := mercurial.PrimaryMessage(chain.Nyms[i+1].Dual())
			sigTilde, err := primary.ConvertSignature(pk, msg, chain.Sigs[i+1].Primary(), rho)
			if err != nil {
				return nil, fmt.Errorf("dac: converting signature at index %d: %w", i+1, err)
			}
			rho, err = group.NonZeroRandomScalar()
			if err != nil {
				return nil, fmt.Errorf("dac: sampling rho at index %d: %w", i, err)
			}
			newMsg, newSig, err := primary.ChangeRepresentation(pk, msg, sigTilde, rho)
			if err != nil {
				return nil, fmt.Errorf("dac: re-randomising link at index %d: %w", i+1, err)
			}
			if !primary.Verify(pk, newMsg, newSig) {
				panic(fmt.Sprintf("dac: re-randomised link at index %d failed to verify", i+1))
			}
			chain.Nyms[i+1] = NewDualPseudonym(mercurial.DualPublicKey(newMsg))
			chain.Sigs[i+1] = NewPrimaryChainSignature(newSig)
		} else {
			pk := chain.Nyms[i].Dual()
			msg := mercurial.DualMessage(chain.Nyms[i+1].Primary())
			sigTilde, err := dual.ConvertSignature(pk, msg, chain.Sigs[i+1].Dual(), rho)
			if err != nil {
				return nil, fmt.Errorf("dac: converting signature at index %d: %w", i+1, err)
			}
			rho, err = group.NonZeroRandomScalar()
			if err != nil {
				return nil, fmt.Errorf("dac: sampling rho at index %d: %w", i, err)
			}
			newMsg, newSig, err := dual.ChangeRepresentation(pk, msg, sigTilde, rho)
			if err != nil {
				return nil, fmt.Errorf("dac: re-randomising link at index %d: %w", i+1, err)
			}
			if !dual.Verify(pk, newMsg, newSig) {
				panic(fmt.Sprintf("dac: re-randomised link at index %d failed to verify", i+1))
			}
			chain.Nyms[i+1] = NewPrimaryPseudonym(mercurial.PrimaryPublicKey(newMsg))
			chain.Sigs[i+1] = NewDualChainSignature(newSig)
		}
	}

	var newLinkSig ChainSignature
	if n%2 == 0 {
		if !newNym.IsPrimary() {
			panic("dac: new pseudonym must be primary-variant at this chain position")
		}
		msg := mercurial.DualMessage(newNym.Primary())
		skConverted := dual.ConvertSecretKey(sk, rho)
		sig, err := dual.Sign(skConverted, msg)
		if err != nil {
			return nil, fmt.Errorf("dac: signing new pseudonym: %w", err)
		}
		if !dual.Verify(chain.Nyms[n-1].Dual(), msg, sig) {
			panic("dac: newly issued link failed to verify")
		}
		newLinkSig = NewDualChainSignature(sig)
	} else {
		if newNym.IsPrimary() {
			panic("dac: new pseudonym must be dual-variant at this chain position")
		}
		msg := mercurial.PrimaryMessage(newNym.Dual())
		skConverted := primary.ConvertSecretKey(sk, rho)
		sig, err := primary.Sign(skConverted, msg)
		if err != nil {
			return nil, fmt.Errorf("dac: signing new pseudonym: %w", err)
		}
		if !primary.Verify(chain.Nyms[n-1].Primary(), msg, sig) {
			panic("dac: newly issued link failed to verify")
		}
		newLinkSig = NewPrimaryChainSignature(sig)
	}

	chain.Nyms = append(chain.Nyms, newNym)
	chain.Sigs = append(chain.Sigs, newLinkSig)
	return chain, nil
}

// VerifyChain reports whether every link of chain verifies: the root
// link against the DAC's own public key, and each subsequent link
// against the pseudonym immediately before it.
func (d *DAC) VerifyChain(chain *Chain) bool {
	n := len(chain.Nyms)
	if n != len(chain.Sigs) {
		panic(fmt.Sprintf("dac: chain has %d pseudonyms but %d signatures", n, len(chain.Sigs)))
	}
	if n == 0 {
		return false
	}

	var dual mercurial.Dual
	var primary mercurial.Primary

	if !dual.Verify(d.initialPK, mercurial.DualMessage(chain.Nyms[0].Primary()), chain.Sigs[0].Dual()) {
		return false
	}

	for i := 0; i < n-1; i++ {
		if i%2 == 0 {
			pk := chain.Nyms[i].Primary()
			msg := mercurial.PrimaryMessage(chain.Nyms[i+1].Dual())
			if !primary.Verify(pk, msg, chain.Sigs[i+1].Primary()) {
				return false
			}
		} else {
			pk := chain.Nyms[i].Dual()
			msg := mercurial.DualMessage(chain.Nyms[i+1].Primary())
			if !dual.Verify(pk, msg, chain.Sigs[i+1].Dual()) {
				return false
			}
		}
	}
	return true
}
