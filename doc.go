// Package bip39 implements the BIP-0039 mnemonic-phrase standard: encoding
// cryptographic entropy as a human-readable word list with an embedded
// checksum, and deriving a deterministic 64-byte seed from a validated
// phrase and an optional passphrase.
//
// Generate a fresh mnemonic:
//
//	m, err := bip39.New(bip39.Words12, bip39.English)
//	seed := bip39.NewSeed(m, "")
//
// Recover entropy from an externally supplied phrase:
//
//	m, err := bip39.FromPhrase(phrase, bip39.English)
//
// HD-wallet key derivation (BIP-0032) is out of scope: the 64-byte Seed is
// the boundary this package hands off at.
package bip39
