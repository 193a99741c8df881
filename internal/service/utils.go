package service

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// reasoningMarkup matches delimited chain-of-thought blocks some models emit
// before the actual answer.
var reasoningMarkup = regexp.MustCompile(`(?is)<think>.*?</think>`)

// stripReasoning removes reasoning markup from raw model output so only the
// formatted script remains.
func stripReasoning(text string) string {
	return strings.TrimSpace(reasoningMarkup.ReplaceAllString(text, ""))
}

// CosineSimilarity returns the cosine of the angle between two vectors.
// Mismatched lengths or a zero vector score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

func roundScore(score float64) float64 {
	return math.Round(score*1000) / 1000
}

// sanitizeUTF8 removes invalid UTF-8 sequences from string before it reaches
// the store or a JSON encoder.
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		result.WriteRune(r)
		s = s[size:]
	}

	return result.String()
}
