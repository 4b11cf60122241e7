package bip39

import "fmt"

// Sentinel errors for the closed BIP-39 error taxonomy. Callers should use
// errors.Is against these, since the parameterized errors below wrap them.
var (
	// ErrInvalidWordCount is returned when a phrase or requested word count
	// does not match one of the five legal BIP-39 lengths (12/15/18/21/24).
	ErrInvalidWordCount = fmt.Errorf("bip39: invalid word count")

	// ErrInvalidKeySize is returned when a requested key size in bits does
	// not match one of the five legal BIP-39 entropy sizes.
	ErrInvalidKeySize = fmt.Errorf("bip39: invalid key size")

	// ErrInvalidEntropyLength is returned when raw entropy supplied to
	// FromEntropy does not match the byte length required by a MnemonicType.
	ErrInvalidEntropyLength = fmt.Errorf("bip39: invalid entropy length")

	// ErrInvalidWord is returned when a phrase contains a token absent from
	// the selected language's wordlist.
	ErrInvalidWord = fmt.Errorf("bip39: invalid word in phrase")

	// ErrInvalidChecksum is returned when a phrase's trailing checksum bits
	// do not match SHA-256(entropy).
	ErrInvalidChecksum = fmt.Errorf("bip39: invalid mnemonic checksum")

	// ErrRandomnessUnavailable is returned when the RandomSource used by
	// New or NewWithRNG (the process-default CSPRNG for New) fails.
	ErrRandomnessUnavailable = fmt.Errorf("bip39: randomness unavailable")

	// ErrLanguageUnavailable is returned when a Language's wordlist is not
	// embedded in this build. See the Language doc comment.
	ErrLanguageUnavailable = fmt.Errorf("bip39: language wordlist unavailable")
)

func newInvalidEntropyLengthError(gotBits int, want MnemonicType) error {
	return fmt.Errorf("%w: got %d bits, want %d bits for %s", ErrInvalidEntropyLength, gotBits, want.EntropyBits(), want)
}

func newInvalidWordError(word string) error {
	return fmt.Errorf("%w: %q", ErrInvalidWord, word)
}

func newRandomnessUnavailableError(err error) error {
	return fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
}

func newLanguageUnavailableError(lang Language) error {
	return fmt.Errorf("%w: %s", ErrLanguageUnavailable, lang)
}
