package bip39

import (
	"fmt"

	"github.com/jferr/bip39/internal/wordlists"
)

// Language is the closed set of wordlists a Mnemonic may be expressed in.
// The full eight-member enumeration is always present so calling code
// compiles against every BIP-39 language; not every variant's wordlist is
// necessarily embedded in a given build (see Wordlist/WordMap).
type Language int

const (
	English Language = iota
	ChineseSimplified
	ChineseTraditional
	French
	Italian
	Japanese
	Korean
	Spanish
)

// DefaultLanguage is English, the only language BIP-39 mandates.
const DefaultLanguage = English

func (l Language) id() wordlists.ID {
	switch l {
	case English:
		return wordlists.English
	case ChineseSimplified:
		return wordlists.ChineseSimplified
	case ChineseTraditional:
		return wordlists.ChineseTraditional
	case French:
		return wordlists.French
	case Italian:
		return wordlists.Italian
	case Japanese:
		return wordlists.Japanese
	case Korean:
		return wordlists.Korean
	case Spanish:
		return wordlists.Spanish
	default:
		panic(fmt.Sprintf("bip39: invalid Language %d", l))
	}
}

// Wordlist returns the canonical 2048-word table for l, or
// ErrLanguageUnavailable if this build does not embed l's wordlist.
func (l Language) Wordlist() (*wordlists.List, error) {
	wl := wordlists.Wordlist(l.id())
	if wl == nil {
		return nil, newLanguageUnavailableError(l)
	}
	return wl, nil
}

// WordMap returns the word->index inverse of Wordlist, or
// ErrLanguageUnavailable if this build does not embed l's wordlist.
func (l Language) WordMap() (*wordlists.Map, error) {
	wm := wordlists.WordMap(l.id())
	if wm == nil {
		return nil, newLanguageUnavailableError(l)
	}
	return wm, nil
}

// String renders the language's canonical name.
func (l Language) String() string {
	switch l {
	case English:
		return "English"
	case ChineseSimplified:
		return "ChineseSimplified"
	case ChineseTraditional:
		return "ChineseTraditional"
	case French:
		return "French"
	case Italian:
		return "Italian"
	case Japanese:
		return "Japanese"
	case Korean:
		return "Korean"
	case Spanish:
		return "Spanish"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}
