// Package wordlists provides lazy, process-wide, read-only access to the
// canonical 2048-word BIP-39 tables and their word→index inverse maps.
//
// Each table is parsed from an embedded static text asset exactly once per
// process, behind a sync.Once, matching the one-shot lazy_static! strategy
// of the reference implementation: concurrent first callers either
// cooperate on a single initialization or compute an identical result, and
// either is fine because the outcome is deterministic.
package wordlists

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed assets/english.txt
var englishAsset string

const wordCount = 2048

// ID names a wordlist independent of any particular language enum, so this
// package has no dependency on the public bip39 package.
type ID int

const (
	English ID = iota
	ChineseSimplified
	ChineseTraditional
	French
	Italian
	Japanese
	Korean
	Spanish
)

// List is the canonical ordered sequence of exactly 2048 unique,
// whitespace-free words for a language.
type List struct {
	words []string
}

// Word returns the word at the given 11-bit index. The index is never out
// of range by construction of the bit codec; an out-of-range index panics
// rather than returning an error.
func (l *List) Word(index uint16) string {
	if int(index) >= len(l.words) {
		panic(fmt.Sprintf("wordlists: index %d out of range for %d-word list", index, len(l.words)))
	}
	return l.words[index]
}

// Len reports the number of words in the list (always 2048 for a loaded
// list).
func (l *List) Len() int {
	return len(l.words)
}

// Map is the inverse of List: word -> 11-bit index.
type Map struct {
	index map[string]uint16
}

// ErrUnknownWord is the sentinel returned when a word is absent from a Map.
var ErrUnknownWord = fmt.Errorf("wordlists: word not found")

// Index returns the index of word, or ErrUnknownWord if it is not a member
// of the wordlist. Lookup is exact: case- and whitespace-sensitive.
func (m *Map) Index(word string) (uint16, error) {
	idx, ok := m.index[word]
	if !ok {
		return 0, ErrUnknownWord
	}
	return idx, nil
}

type registryEntry struct {
	once sync.Once
	list *List
	wmap *Map
	// asset is the embedded raw text source for this language, or empty if
	// this build does not bundle the language (see the English-only note
	// in SPEC_FULL.md / DESIGN.md).
	asset string
}

var registry = map[ID]*registryEntry{
	English:            {asset: englishAsset},
	ChineseSimplified:  {},
	ChineseTraditional: {},
	French:             {},
	Italian:            {},
	Japanese:           {},
	Korean:             {},
	Spanish:            {},
}

func (e *registryEntry) init() {
	e.once.Do(func() {
		if e.asset == "" {
			return
		}
		words := strings.Fields(e.asset)
		debugAssertWordCount(words)
		list := &List{words: words}
		idx := make(map[string]uint16, len(words))
		for i, w := range words {
			idx[w] = uint16(i)
		}
		e.list = list
		e.wmap = &Map{index: idx}
	})
}

func debugAssertWordCount(words []string) {
	if len(words) != wordCount {
		panic(fmt.Sprintf("wordlists: embedded asset has %d words, want %d", len(words), wordCount))
	}
}

// Wordlist returns the ordered word table for id, or nil if id's wordlist
// is not embedded in this build.
func Wordlist(id ID) *List {
	e := registry[id]
	if e == nil {
		return nil
	}
	e.init()
	return e.list
}

// WordMap returns the word->index map for id, or nil if id's wordlist is
// not embedded in this build.
func WordMap(id ID) *Map {
	e := registry[id]
	if e == nil {
		return nil
	}
	e.init()
	return e.wmap
}
