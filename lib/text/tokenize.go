package text

import (
	"github.com/blevesearch/segment"
)

// CountTokens counts the word tokens in text using unicode word
// segmentation. Used for per-record stats in batch summaries.
func CountTokens(text string) int {
	segmenter := segment.NewWordSegmenterDirect([]byte(text))
	count := 0
	for segmenter.Segment() {
		if segmenter.Type() != segment.None {
			count++
		}
	}
	return count
}

// Tokens returns the word tokens in text, skipping whitespace and
// punctuation segments.
func Tokens(text string) []string {
	segmenter := segment.NewWordSegmenterDirect([]byte(text))
	var tokens []string
	for segmenter.Segment() {
		if segmenter.Type() != segment.None {
			tokens = append(tokens, segmenter.Text())
		}
	}
	return tokens
}
