package bip39

import (
	"crypto/sha256"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jferr/bip39/internal/bitcodec"
)

// Mnemonic is a validated BIP-39 phrase together with the entropy it
// encodes. A Mnemonic is never observed in a partially-constructed state:
// every constructor either returns a value satisfying all invariants or no
// value at all. Mnemonic is immutable after construction and safe to share
// read-only across goroutines.
type Mnemonic struct {
	phrase   string
	entropy  []byte
	language Language
	mtype    MnemonicType
}

// New generates a fresh Mnemonic of the given type and language using the
// process-default RandomSource. It fails with ErrRandomnessUnavailable if
// the CSPRNG cannot be read.
func New(t MnemonicType, lang Language) (*Mnemonic, error) {
	return NewWithRNG(t, lang, DefaultRandomSource)
}

// NewWithRNG generates a fresh Mnemonic using the supplied RandomSource,
// for tests and other callers that need a deterministic or alternative
// entropy source.
func NewWithRNG(t MnemonicType, lang Language, rng RandomSource) (*Mnemonic, error) {
	entropy := make([]byte, t.EntropyBits()/8)
	if err := rng.Fill(entropy); err != nil {
		return nil, newRandomnessUnavailableError(err)
	}
	return FromEntropy(entropy, t, lang)
}

// FromEntropy builds a Mnemonic from caller-supplied entropy. entropy must
// be exactly t.EntropyBits()/8 bytes long, or ErrInvalidEntropyLength is
// returned.
//
// The checksum is the leading checksum_bits of SHA-256(entropy). Rather
// than extracting those bits with an explicit shift, entropy and the full
// 32-byte hash are concatenated and fed through the 11-bit bit-group
// reader: reading exactly word_count groups naturally consumes all of
// entropy (byte-aligned, since entropy_bits is always a multiple of 8)
// followed by the checksum_bits leading bits of the hash, and no more.
func FromEntropy(entropy []byte, t MnemonicType, lang Language) (*Mnemonic, error) {
	if len(entropy)*8 != t.EntropyBits() {
		return nil, newInvalidEntropyLengthError(len(entropy)*8, t)
	}

	wordlist, err := lang.Wordlist()
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256(entropy)
	combined := make([]byte, 0, len(entropy)+len(hash))
	combined = append(combined, entropy...)
	combined = append(combined, hash[:]...)

	reader := bitcodec.NewReader(combined)
	words := make([]string, t.WordCount())
	for i := range words {
		idx, ok := reader.Next()
		if !ok {
			panic("bip39: bit reader exhausted before word_count groups")
		}
		words[i] = wordlist.Word(idx)
	}

	return &Mnemonic{
		phrase:   strings.Join(words, " "),
		entropy:  append([]byte(nil), entropy...),
		language: lang,
		mtype:    t,
	}, nil
}

// FromPhrase parses and validates an externally supplied phrase, recovering
// the entropy it encodes. The phrase is stored byte-for-byte as supplied;
// each word is NFKD-normalized before wordlist lookup (a no-op for the
// embedded ASCII English wordlist) but is otherwise matched exactly, so an
// uppercase variant of an otherwise-valid word still fails ErrInvalidWord.
func FromPhrase(phrase string, lang Language) (*Mnemonic, error) {
	words, err := splitPhrase(phrase)
	if err != nil {
		return nil, err
	}
	t, err := ForWordCount(len(words))
	if err != nil {
		return nil, err
	}

	wordmap, err := lang.WordMap()
	if err != nil {
		return nil, err
	}

	// NFKD-normalize each token before wordmap lookup, per the seed-side
	// normalization in seed.go: required for non-English wordlists, a
	// no-op for the embedded pure-ASCII English one. The stored phrase
	// itself is left untouched (see FromPhrase's doc comment).
	var w bitcodec.Writer
	for _, word := range words {
		idx, err := wordmap.Index(norm.NFKD.String(word))
		if err != nil {
			return nil, newInvalidWordError(word)
		}
		w.Push(idx)
	}

	// word_count * 11 bits, entropy_bits of which are always byte-aligned
	// (entropy_bits is a multiple of 8 for every MnemonicType), so entropy
	// can be read off as whole bytes and the claimed checksum as the
	// leading checksum_bits of the very next byte.
	buf := w.Bytes()
	entropy := buf[:t.EntropyBits()/8]
	checksumByte := buf[t.EntropyBits()/8]
	claimedChecksum := checksumByte >> uint(8-t.ChecksumBits())

	hash := sha256.Sum256(entropy)
	expectedChecksum := hash[0] >> uint(8-t.ChecksumBits())

	if claimedChecksum != expectedChecksum {
		return nil, ErrInvalidChecksum
	}

	return &Mnemonic{
		phrase:   phrase,
		entropy:  append([]byte(nil), entropy...),
		language: lang,
		mtype:    t,
	}, nil
}

// Validate is a convenience wrapper around FromPhrase that reports only
// success or failure.
func Validate(phrase string, lang Language) error {
	_, err := FromPhrase(phrase, lang)
	return err
}

// Phrase returns the canonical space-separated phrase, stored exactly as
// supplied at construction (FromPhrase) or generated (New/FromEntropy).
func (m *Mnemonic) Phrase() string { return m.phrase }

// Entropy returns the raw entropy this phrase encodes.
func (m *Mnemonic) Entropy() []byte { return append([]byte(nil), m.entropy...) }

// Language returns the language this phrase's words belong to.
func (m *Mnemonic) Language() Language { return m.language }

// Type returns the MnemonicType (word count / entropy size profile) of
// this phrase.
func (m *Mnemonic) Type() MnemonicType { return m.mtype }
