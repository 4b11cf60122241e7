package bip39

import "fmt"

// MnemonicType is the closed set of five legal BIP-39 phrase profiles.
// Every derived constant (entropy bits, checksum bits, total bits, word
// count) is invariant per variant.
type MnemonicType int

const (
	Words12 MnemonicType = iota
	Words15
	Words18
	Words21
	Words24
)

// ForWordCount returns the MnemonicType matching a phrase word count, or
// ErrInvalidWordCount if count isn't one of {12,15,18,21,24}.
func ForWordCount(count int) (MnemonicType, error) {
	switch count {
	case 12:
		return Words12, nil
	case 15:
		return Words15, nil
	case 18:
		return Words18, nil
	case 21:
		return Words21, nil
	case 24:
		return Words24, nil
	default:
		return 0, fmt.Errorf("%w: %d words", ErrInvalidWordCount, count)
	}
}

// ForKeySize returns the MnemonicType matching a key size in bits, or
// ErrInvalidKeySize if bits isn't one of {128,160,192,224,256}.
func ForKeySize(bits int) (MnemonicType, error) {
	switch bits {
	case 128:
		return Words12, nil
	case 160:
		return Words15, nil
	case 192:
		return Words18, nil
	case 224:
		return Words21, nil
	case 256:
		return Words24, nil
	default:
		return 0, fmt.Errorf("%w: %d bits", ErrInvalidKeySize, bits)
	}
}

// ForPhrase splits phrase on single spaces and returns the MnemonicType
// matching its word count. It does not otherwise validate the phrase.
func ForPhrase(phrase string) (MnemonicType, error) {
	words, err := splitPhrase(phrase)
	if err != nil {
		return 0, err
	}
	return ForWordCount(len(words))
}

// EntropyBits returns the number of entropy bits for this variant.
func (t MnemonicType) EntropyBits() int {
	switch t {
	case Words12:
		return 128
	case Words15:
		return 160
	case Words18:
		return 192
	case Words21:
		return 224
	case Words24:
		return 256
	default:
		panic(fmt.Sprintf("bip39: invalid MnemonicType %d", t))
	}
}

// ChecksumBits returns the number of checksum bits appended to the entropy
// for this variant: entropy_bits / 32.
func (t MnemonicType) ChecksumBits() int {
	return t.EntropyBits() / 32
}

// TotalBits returns entropy_bits + checksum_bits == 11 * word_count.
func (t MnemonicType) TotalBits() int {
	return t.EntropyBits() + t.ChecksumBits()
}

// WordCount returns the number of words in a phrase of this variant.
func (t MnemonicType) WordCount() int {
	switch t {
	case Words12:
		return 12
	case Words15:
		return 15
	case Words18:
		return 18
	case Words21:
		return 21
	case Words24:
		return 24
	default:
		panic(fmt.Sprintf("bip39: invalid MnemonicType %d", t))
	}
}

// String renders e.g. "12 words (128 bits)".
func (t MnemonicType) String() string {
	return fmt.Sprintf("%d words (%d bits)", t.WordCount(), t.EntropyBits())
}

// splitPhrase enforces strict single-ASCII-space separation: no leading or
// trailing space, and no run of consecutive spaces. Any deviation is
// ErrInvalidWordCount, per the spec's resolved Open Question.
func splitPhrase(phrase string) ([]string, error) {
	if phrase == "" {
		return nil, fmt.Errorf("%w: empty phrase", ErrInvalidWordCount)
	}
	words := make([]string, 0, 24)
	start := 0
	for i := 0; i <= len(phrase); i++ {
		if i == len(phrase) || phrase[i] == ' ' {
			if i == start {
				return nil, fmt.Errorf("%w: leading, trailing, or repeated space", ErrInvalidWordCount)
			}
			words = append(words, phrase[start:i])
			start = i + 1
		}
	}
	return words, nil
}
