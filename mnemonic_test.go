package bip39

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

// zeroRandomSource fills every byte with 0x00, matching the spec's
// generation scenario for a deterministic test double.
type zeroRandomSource struct{}

func (zeroRandomSource) Fill(buf []byte) error {
	for i := range buf {
		buf[i] = 0
	}
	return nil
}

// erroringRandomSource always fails, for exercising ErrRandomnessUnavailable.
type erroringRandomSource struct{}

func (erroringRandomSource) Fill(buf []byte) error {
	return errTestRandomFailure
}

var errTestRandomFailure = &testRandomError{}

type testRandomError struct{}

func (*testRandomError) Error() string { return "simulated randomness failure" }

func TestGenerationScenarioZeroEntropy(t *testing.T) {
	m, err := NewWithRNG(Words12, English, zeroRandomSource{})
	if err != nil {
		t.Fatalf("NewWithRNG error: %v", err)
	}
	want := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if m.Phrase() != want {
		t.Fatalf("Phrase() = %q, want %q", m.Phrase(), want)
	}
}

func TestNewWithRNGFailure(t *testing.T) {
	if _, err := NewWithRNG(Words12, English, erroringRandomSource{}); err == nil {
		t.Fatal("expected ErrRandomnessUnavailable")
	}
}

func TestFromEntropyInvalidLength(t *testing.T) {
	if _, err := FromEntropy(make([]byte, 15), Words12, English); err == nil {
		t.Fatal("expected ErrInvalidEntropyLength for 15 bytes against Words12")
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return b
}

// trezorVectors are the official BIP-39 English test vectors reproduced in
// the specification (entropy, phrase, passphrase, seed).
var trezorVectors = []struct {
	entropyHex string
	phrase     string
	passphrase string
	seedHex    string
}{
	{
		"00000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		"TREZOR",
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
	},
	{
		"80808080808080808080808080808080",
		"letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
		"TREZOR",
		"d71de856f81a8acc65e6fc851a38d4d7ec216fd0796d0a6827a3ad6ed5511a30fa280f12eb2e47ed2ac03b5c462a0358d18d69fe4f985ec81778c1b370b652a8",
	},
	{
		"9e885d952ad362caeb4efe34a8e91bd2",
		"ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic",
		"TREZOR",
		"274ddc525802f7c828d8ef7ddbcdc5304e87ac3535913611fbbfa986d0c9e5476c91689f9c8a54fd55bd38606aa6a8595ad213d4c9c9f9aca3fb217069a41028",
	},
}

func TestTrezorVectorsFromEntropy(t *testing.T) {
	for _, v := range trezorVectors {
		v := v
		t.Run(v.phrase[:10], func(t *testing.T) {
			entropy := mustHex(t, v.entropyHex)
			m, err := FromEntropy(entropy, mustTypeForEntropy(t, entropy), English)
			if err != nil {
				t.Fatalf("FromEntropy error: %v", err)
			}
			if m.Phrase() != v.phrase {
				t.Fatalf("Phrase() = %q, want %q", m.Phrase(), v.phrase)
			}
		})
	}
}

func TestTrezorVectorsSeed(t *testing.T) {
	for _, v := range trezorVectors {
		v := v
		t.Run(v.phrase[:10], func(t *testing.T) {
			m, err := FromPhrase(v.phrase, English)
			if err != nil {
				t.Fatalf("FromPhrase error: %v", err)
			}
			seed := NewSeed(m, v.passphrase)
			if got := seed.ToHexLower(false); got != v.seedHex {
				t.Fatalf("seed = %s, want %s", got, v.seedHex)
			}
		})
	}
}

func mustTypeForEntropy(t *testing.T, entropy []byte) MnemonicType {
	t.Helper()
	ty, err := ForKeySize(len(entropy) * 8)
	if err != nil {
		t.Fatalf("ForKeySize error: %v", err)
	}
	return ty
}

func TestFromPhraseRoundTrip(t *testing.T) {
	for _, v := range trezorVectors {
		m, err := FromPhrase(v.phrase, English)
		if err != nil {
			t.Fatalf("FromPhrase error: %v", err)
		}
		want := mustHex(t, v.entropyHex)
		if !bytes.Equal(m.Entropy(), want) {
			t.Fatalf("Entropy() = %x, want %x", m.Entropy(), want)
		}
	}
}

func TestFromPhraseEmpty(t *testing.T) {
	if _, err := FromPhrase("", English); err == nil {
		t.Fatal("FromPhrase(\"\") should fail")
	}
}

func TestFromPhraseUppercaseWordFails(t *testing.T) {
	phrase := "Abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if _, err := FromPhrase(phrase, English); err == nil {
		t.Fatal("uppercase variant of a valid word should fail InvalidWord")
	}
}

func TestFromPhraseBadChecksum(t *testing.T) {
	// all members of the wordlist, correct word count, wrong checksum.
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
	if _, err := FromPhrase(phrase, English); err == nil {
		t.Fatal("expected ErrInvalidChecksum")
	}
}

func TestFromPhraseUnknownWord(t *testing.T) {
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon notaword"
	if _, err := FromPhrase(phrase, English); err == nil {
		t.Fatal("expected ErrInvalidWord")
	}
}

func TestFromPhraseLeadingTrailingSpace(t *testing.T) {
	base := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	for _, phrase := range []string{" " + base, base + " ", "abandon  abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"} {
		if _, err := FromPhrase(phrase, English); err == nil {
			t.Fatalf("phrase with stray spacing should fail: %q", phrase)
		}
	}
}

func TestAllMnemonicTypesRoundTrip(t *testing.T) {
	types := []MnemonicType{Words12, Words15, Words18, Words21, Words24}
	for _, ty := range types {
		entropy := make([]byte, ty.EntropyBits()/8)
		for i := range entropy {
			entropy[i] = byte(i * 7)
		}
		m, err := FromEntropy(entropy, ty, English)
		if err != nil {
			t.Fatalf("%v: FromEntropy error: %v", ty, err)
		}
		if !bytes.Equal(m.Entropy(), entropy) {
			t.Fatalf("%v: Entropy() mismatch", ty)
		}
		m2, err := FromPhrase(m.Phrase(), English)
		if err != nil {
			t.Fatalf("%v: FromPhrase round trip error: %v", ty, err)
		}
		if !bytes.Equal(m2.Entropy(), m.Entropy()) {
			t.Fatalf("%v: round-trip entropy mismatch", ty)
		}
	}
}

func TestFlippingAWordChangesOutcome(t *testing.T) {
	m, err := FromPhrase(trezorVectors[0].phrase, English)
	if err != nil {
		t.Fatalf("FromPhrase error: %v", err)
	}
	words := splitWordsForTest(m.Phrase())
	// flip the penultimate word to a different, arbitrary wordlist entry.
	words[len(words)-2] = "zoo"
	flipped := strings.Join(words, " ")

	m2, err := FromPhrase(flipped, English)
	if err == nil && bytes.Equal(m2.Entropy(), m.Entropy()) {
		t.Fatal("flipping a word must not silently preserve identical entropy")
	}
}

func splitWordsForTest(phrase string) []string {
	words, err := splitPhrase(phrase)
	if err != nil {
		panic(err)
	}
	return words
}

func TestIsValid(t *testing.T) {
	if !IsValid(trezorVectors[0].phrase, English) {
		t.Fatal("expected valid phrase to report true")
	}
	if IsValid("not a valid phrase at all", English) {
		t.Fatal("expected invalid phrase to report false")
	}
}

func TestSeedFromPhrase(t *testing.T) {
	v := trezorVectors[0]
	seed, err := SeedFromPhrase(v.phrase, English, v.passphrase)
	if err != nil {
		t.Fatalf("SeedFromPhrase error: %v", err)
	}
	if got := seed.ToHexLower(false); got != v.seedHex {
		t.Fatalf("seed = %s, want %s", got, v.seedHex)
	}
	if _, err := SeedFromPhrase("invalid phrase here", English, ""); err == nil {
		t.Fatal("expected SeedFromPhrase to fail validation")
	}
}
