package suffixautomaton

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidUTF8 = errors.New("suffixautomaton: invalid UTF-8 encoding in input words")
)

type IndexBuilder struct {
	words         []string
	caseSensitive bool
	normalize     bool
}

func NewBuilder(words []string) *IndexBuilder {
	return &IndexBuilder{
		words:         words,
		caseSensitive: false,
		normalize:     true,
	}
}

// Makes the search case sensitive.
func (b *IndexBuilder) CaseSensitive() *IndexBuilder {
	b.caseSensitive = true
	return b
}

// Skips the normalization of the words with NFC.
func (b *IndexBuilder) SkipNormalization() *IndexBuilder {
	b.normalize = false
	return b
}

// Build adds the words in order. Each word extends the text left by the
// previous one, so a pattern may match across a word boundary.
func (b *IndexBuilder) Build() (*Index, error) {
	for _, word := range b.words {
		if !utf8.ValidString(word) {
			return nil, ErrInvalidUTF8
		}
	}

	idx := &Index{
		automaton:     New[rune](),
		caseSensitive: b.caseSensitive,
		normalize:     b.normalize,
	}
	for _, word := range b.words {
		idx.add(word)
	}
	return idx, nil
}

// Index answers substring queries over UTF-8 text, one rune per symbol.
// It has the same concurrency rules as Automaton.
type Index struct {
	automaton     *Automaton[rune]
	words         int
	caseSensitive bool
	normalize     bool
}

func applyTransforms(word string, caseSensitive bool, normalize bool) string {
	if !caseSensitive {
		word = cases.Fold().String(word)
	}
	if normalize {
		word = norm.NFC.String(word)
	}
	return word
}

func (x *Index) add(word string) {
	x.automaton.AddString([]rune(applyTransforms(word, x.caseSensitive, x.normalize)))
	x.words++
}

// Add appends one more word.
func (x *Index) Add(word string) error {
	if !utf8.ValidString(word) {
		return ErrInvalidUTF8
	}
	x.add(word)
	return nil
}

func (x *Index) pattern(p string) ([]rune, bool) {
	if !utf8.ValidString(p) {
		return nil, false
	}
	return []rune(applyTransforms(p, x.caseSensitive, x.normalize)), true
}

// Contains reports whether pattern occurs in the indexed text.
func (x *Index) Contains(pattern string) bool {
	p, ok := x.pattern(pattern)
	return ok && x.automaton.Contains(p)
}

// HasSuffix reports whether pattern ends the text at some word boundary.
func (x *Index) HasSuffix(pattern string) bool {
	p, ok := x.pattern(pattern)
	return ok && x.automaton.HasSuffix(p)
}

// Words returns how many words were added since the last Clear.
func (x *Index) Words() int {
	return x.words
}

func (x *Index) Clear() {
	x.automaton.Clear()
	x.words = 0
}

// Automaton exposes the underlying automaton for read-only use.
func (x *Index) Automaton() *Automaton[rune] {
	return x.automaton
}
