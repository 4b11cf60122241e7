package bip39

import "crypto/rand"

// RandomSource is the capability Mnemonic uses to obtain entropy. It exists
// so tests and deterministic callers can supply a non-OS source; production
// code gets the process-default source by using New instead of NewWithRNG.
//
// Fill must populate the entirety of buf with cryptographically suitable
// random bytes, or return a non-nil error.
type RandomSource interface {
	Fill(buf []byte) error
}

// defaultRandomSource reads from crypto/rand, the OS CSPRNG.
type defaultRandomSource struct{}

func (defaultRandomSource) Fill(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}

// DefaultRandomSource is the RandomSource used by New.
var DefaultRandomSource RandomSource = defaultRandomSource{}
