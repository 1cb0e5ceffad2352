package analysis

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Flesch scores text with the Flesch reading-ease formula:
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
type Flesch struct{}

// Readability implements ReadabilityScorer.
func (Flesch) Readability(_ context.Context, text string) (float64, error) {
	words := wordsOf(text)
	if len(words) == 0 {
		return 0, fmt.Errorf("no words to score")
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}
	sentences := countSentences(text)

	wps := float64(len(words)) / float64(sentences)
	spw := float64(syllables) / float64(len(words))
	return round2(206.835 - 1.015*wps - 84.6*spw), nil
}

// wordsOf splits text into lowercase letter/digit runs.
func wordsOf(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func countSentences(text string) int {
	n := 0
	inTerminator := false
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if !inTerminator {
				n++
			}
			inTerminator = true
			continue
		}
		inTerminator = false
	}
	// trailing text without a terminator is still a sentence
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	if trimmed != "" && !strings.ContainsAny(trimmed[len(trimmed)-1:], ".!?") {
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}

// countSyllables approximates syllables as vowel groups, dropping a silent
// trailing "e". Every word has at least one.
func countSyllables(word string) int {
	n := 0
	prevVowel := false
	for _, r := range word {
		v := strings.ContainsRune("aeiouy", r)
		if v && !prevVowel {
			n++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && n > 1 {
		n--
	}
	if n == 0 {
		n = 1
	}
	return n
}

func round2(v float64) float64 {
	if v < 0 {
		return float64(int(v*100-0.5)) / 100
	}
	return float64(int(v*100+0.5)) / 100
}
