// Package dac composes the primary and dual Mercurial signature variants
// (package mercurial) into a Delegatable Anonymous Credential chain: a
// root authority issues a pseudonym to User 1, who may delegate to
// User 2, and so on, with every step re-randomised for unlinkability.
package dac

import "github.com/agni-datta/Mercurial-Signatures/mercurial"

// Pseudonym is a chain position's public key. A pseudonym's own group
// alternates by chain index: even indices hold a primary-variant
// pseudonym (∈ G2), odd indices hold a dual-variant one (∈ G1). The
// alternation falls out of each issuer needing the new pseudonym's
// group to be the opposite of its own signing key's group. The tag
// tracks which variant a given pseudonym is.
type Pseudonym struct {
	primary   mercurial.PrimaryPublicKey
	dual      mercurial.DualPublicKey
	isPrimary bool
}

// NewPrimaryPseudonym wraps a primary-variant public key as a pseudonym.
func NewPrimaryPseudonym(pk mercurial.PrimaryPublicKey) Pseudonym {
	return Pseudonym{primary: pk, isPrimary: true}
}

// NewDualPseudonym wraps a dual-variant public key as a pseudonym.
func NewDualPseudonym(pk mercurial.DualPublicKey) Pseudonym {
	return Pseudonym{dual: pk}
}

// IsPrimary reports whether this pseudonym is primary-variant.
func (p Pseudonym) IsPrimary() bool { return p.isPrimary }

// Primary returns the underlying primary-variant public key. It panics
// if the pseudonym is dual-variant.
func (p Pseudonym) Primary() mercurial.PrimaryPublicKey {
	if !p.isPrimary {
		panic("dac: pseudonym is dual-variant, not primary")
	}
	return p.primary
}

// Dual returns the underlying dual-variant public key. It panics if
// the pseudonym is primary-variant.
func (p Pseudonym) Dual() mercurial.DualPublicKey {
	if p.isPrimary {
		panic("dac: pseudonym is primary-variant, not dual")
	}
	return p.dual
}

// ChainSignature is a chain link's signature, tagged by which variant
// produced it. Link i+1 is always signed by the variant matching chain
// index i's own pseudonym type, so a chain's signature tags alternate
// in lockstep with its pseudonym tags, shifted by one.
type ChainSignature struct {
	primary   mercurial.PrimarySignature
	dual      mercurial.DualSignature
	isPrimary bool
}

// NewPrimaryChainSignature wraps a primary-variant signature.
func NewPrimaryChainSignature(sig mercurial.PrimarySignature) ChainSignature {
	return ChainSignature{primary: sig, isPrimary: true}
}

// NewDualChainSignature wraps a dual-variant signature.
func NewDualChainSignature(sig mercurial.DualSignature) ChainSignature {
	return ChainSignature{dual: sig}
}

// IsPrimary reports whether this signature is primary-variant.
func (s ChainSignature) IsPrimary() bool { return s.isPrimary }

// Primary returns the underlying primary-variant signature. It panics
// if the signature is dual-variant.
func (s ChainSignature) Primary() mercurial.PrimarySignature {
	if !s.isPrimary {
		panic("dac: signature is dual-variant, not primary")
	}
	return s.primary
}

// Dual returns the underlying dual-variant signature. It panics if the
// signature is primary-variant.
func (s ChainSignature) Dual() mercurial.DualSignature {
	if s.isPrimary {
		panic("dac: signature is primary-variant, not dual")
	}
	return s.dual
}

// Chain is a credential chain: parallel sequences of pseudonyms and the
// signatures linking each to the one before it. Nyms[0] is the
// root-signed pseudonym; Sigs[0] is the root's signature over it.
// len(Nyms) must always equal len(Sigs).
type Chain struct {
	Nyms []Pseudonym
	Sigs []ChainSignature
}
