package bip39

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	seedSaltPrefix = "mnemonic"
	seedIterations = 2048
	// SeedSize is the fixed output length, in bytes, of a derived Seed.
	SeedSize = 64
)

// Seed is the opaque 64-byte value derived from a Mnemonic and an optional
// passphrase. It is immutable, trivially copyable, and does not retain the
// passphrase used to derive it.
type Seed struct {
	bytes [SeedSize]byte
}

// NewSeed derives the 64-byte PBKDF2-HMAC-SHA512 seed for mnemonic and
// passphrase.
//
// The critical, easy-to-get-wrong contract: the PBKDF2 password is the
// mnemonic phrase's UTF-8 bytes, never the decoded entropy. Mixing these up
// is the single most common BIP-39 implementation bug.
//
// Per BIP-39, non-English wordlists require NFKD normalization of both the
// phrase and the passphrase before derivation; this call is unconditional
// so enabling a future non-English wordlist needs no further change. For
// the embedded English wordlist (pure ASCII) NFKD is a no-op.
func NewSeed(mnemonic *Mnemonic, passphrase string) *Seed {
	password := norm.NFKD.String(mnemonic.Phrase())
	salt := seedSaltPrefix + norm.NFKD.String(passphrase)

	key := pbkdf2.Key([]byte(password), []byte(salt), seedIterations, SeedSize, sha512.New)

	var s Seed
	copy(s.bytes[:], key)
	return &s
}

// AsBytes returns the 64-byte seed value.
func (s *Seed) AsBytes() [SeedSize]byte {
	return s.bytes
}

// ToHexLower renders the seed as 128 lowercase hex characters. When
// withPrefix is true, the result is prefixed with "0x".
func (s *Seed) ToHexLower(withPrefix bool) string {
	h := hex.EncodeToString(s.bytes[:])
	if withPrefix {
		return "0x" + h
	}
	return h
}

// ToHexUpper renders the seed as 128 uppercase hex characters. When
// withPrefix is true, the result is prefixed with "0x".
func (s *Seed) ToHexUpper(withPrefix bool) string {
	h := strings.ToUpper(hex.EncodeToString(s.bytes[:]))
	if withPrefix {
		return "0x" + h
	}
	return h
}
