package suffixautomaton

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func naiveContains(words []string, pattern string, caseSensitive, normalize bool) bool {
	var text strings.Builder
	for _, w := range words {
		text.WriteString(applyTransforms(w, caseSensitive, normalize))
	}
	return strings.Contains(text.String(), applyTransforms(pattern, caseSensitive, normalize))
}

func TestIndexContainsBasic(t *testing.T) {
	words := []string{"apple", "banana", "app", "pineapple", "bandana"}
	idx, err := NewBuilder(words).Build()
	if err != nil {
		t.Fatal(err)
	}

	tests := []string{"app", "an", "pine", "xyz", "", "App", "BANDANA", "eapp", "nanaa"}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			got := idx.Contains(pattern)
			want := naiveContains(words, pattern, idx.caseSensitive, idx.normalize)
			if got != want {
				t.Errorf("Contains(%q) = %v, want %v", pattern, got, want)
			}
		})
	}
	if idx.Words() != len(words) {
		t.Errorf("Words() = %d, want %d", idx.Words(), len(words))
	}
}

func TestIndexOptions(t *testing.T) {
	words := []string{"Café", "cafe", "CAFE", "élite", "Straße"}
	decomposed := "Cafe\u0301"

	strict, err := NewBuilder(words).CaseSensitive().SkipNormalization().Build()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		pattern string
		want    bool
	}{
		{"Café", true},
		{"cafe", true},
		{"CAFÉ", false},
		{decomposed, false},
		{"strasse", false},
	}
	for _, tc := range tests {
		if got := strict.Contains(tc.pattern); got != tc.want {
			t.Errorf("strict Contains(%q) = %v, want %v", tc.pattern, got, tc.want)
		}
	}

	loose, err := NewBuilder(words).Build()
	if err != nil {
		t.Fatal(err)
	}
	for _, pattern := range []string{"CAFÉ", decomposed, "STRASSE", "ÉLITE"} {
		if !loose.Contains(pattern) {
			t.Errorf("default Contains(%q) = false", pattern)
		}
	}
}

func TestIndexHasSuffix(t *testing.T) {
	idx, err := NewBuilder([]string{"foo", "bar"}).Build()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"foo", "oo", "bar", "ar", "foobar", ""} {
		if !idx.HasSuffix(p) {
			t.Errorf("HasSuffix(%q) = false", p)
		}
	}
	for _, p := range []string{"fo", "ooba", "ba"} {
		if idx.HasSuffix(p) {
			t.Errorf("HasSuffix(%q) = true", p)
		}
	}
	// Words are appended to one text.
	if !idx.Contains("obar") {
		t.Error("Contains(\"obar\") = false")
	}
}

func TestIndexInvalidUTF8(t *testing.T) {
	if _, err := NewBuilder([]string{"ok", "\xff"}).Build(); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("Build error = %v, want ErrInvalidUTF8", err)
	}

	idx, err := NewBuilder(nil).Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := idx.Add("bad\xfe"); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Add error = %v, want ErrInvalidUTF8", err)
	}
	if err := idx.Add("good"); err != nil {
		t.Fatal(err)
	}
	if idx.Contains("\xff") {
		t.Error("invalid pattern should not be contained")
	}
	if !idx.Contains("oo") {
		t.Error("Contains(\"oo\") = false")
	}
}

func TestIndexClear(t *testing.T) {
	idx, err := NewBuilder([]string{"hello"}).Build()
	if err != nil {
		t.Fatal(err)
	}
	idx.Clear()
	if idx.Contains("h") || idx.Words() != 0 || idx.Automaton().NumStates() != 1 {
		t.Error("Clear should leave an empty index")
	}
	if err := idx.Add("world"); err != nil {
		t.Fatal(err)
	}
	if !idx.Contains("orl") || idx.Contains("hello") {
		t.Error("index after Clear should only hold new words")
	}
}

func FuzzIndexContains(f *testing.F) {
	f.Add([]byte("apple\xffbanana\xffapp\xffpineapple\xffbandana"), []byte("app"))
	f.Add([]byte("hello\xffworld\xffhell\xffloworld\xff😂🙈🙉🙊"), []byte("😂"))

	f.Fuzz(func(t *testing.T, data []byte, pat []byte) {
		if !utf8.Valid(pat) {
			return
		}
		var words []string
		totalLen := 0
		for _, wb := range bytes.Split(data, []byte{0xFF}) {
			if len(wb) == 0 || !utf8.Valid(wb) {
				continue
			}
			words = append(words, string(wb))
			totalLen += len(wb)
		}
		if len(words) > 50 || totalLen > 1000 || len(pat) > 100 {
			return
		}

		idx, err := NewBuilder(words).Build()
		if err != nil {
			t.Fatal(err)
		}
		got := idx.Contains(string(pat))
		want := naiveContains(words, string(pat), idx.caseSensitive, idx.normalize)
		if got != want {
			t.Errorf("Contains(%q) = %v, want %v", pat, got, want)
		}
	})
}
