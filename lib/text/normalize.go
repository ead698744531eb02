package text

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/openmed-ai/species-recognition/lib"
)

var WordDelimiters = map[byte]struct{}{
	'(':  {},
	')':  {},
	'{':  {},
	'}':  {},
	'[':  {},
	']':  {},
	'"':  {},
	'\'': {},
	':':  {},
	';':  {},
	',':  {},
	'.':  {},
	'?':  {},
	'!':  {},
}

func IsWordDelimiter(b byte) bool {
	_, ok := WordDelimiters[b]
	return ok
}

// ValidateText rejects input the hosted model cannot accept.
func ValidateText(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("text is empty")
	}
	if !utf8.ValidString(s) {
		return fmt.Errorf("text is not valid utf-8")
	}
	return nil
}

// NormalizeText produces the exact string submitted to the model:
// NFKC normalised with runs of whitespace collapsed to single spaces.
// Entity offsets in the response are relative to this string.
func NormalizeText(s string) string {
	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeWord lowercases and strips surrounding quotes, brackets and
// punctuation so predicted words can be compared against text spans.
func NormalizeWord(word string) string {
	word = norm.NFKC.String(word)
	word = strings.TrimSpace(word)

	for len(word) > 0 && IsWordDelimiter(word[0]) {
		word = word[1:]
	}
	for len(word) > 0 && IsWordDelimiter(word[len(word)-1]) {
		word = word[:len(word)-1]
	}

	return strings.ToLower(word)
}

// ValidSpan reports whether a prediction's offsets land inside text and
// the span agrees with the predicted word after normalisation.
func ValidSpan(text string, p lib.Prediction) bool {
	if p.Start < 0 || p.End < p.Start || p.End > len(text) {
		return false
	}
	if p.Word == "" {
		return false
	}
	return NormalizeWord(text[p.Start:p.End]) == NormalizeWord(p.Word)
}
