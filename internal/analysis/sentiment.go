package analysis

import (
	"context"
	"strings"
)

type lexEntry struct {
	polarity     float64
	subjectivity float64
}

// LexiconSentiment is a word-lexicon scorer in the style of pattern/TextBlob:
// each known adjective or adverb carries a polarity and subjectivity, an
// intensifier scales the word after it, and a negation flips it at half
// strength. The text scores are averages over the matched words.
type LexiconSentiment struct {
	lexicon      map[string]lexEntry
	intensifiers map[string]float64
	negations    map[string]struct{}
}

// NewLexiconSentiment returns the built-in English scorer.
func NewLexiconSentiment() *LexiconSentiment {
	return &LexiconSentiment{
		lexicon:      defaultLexicon,
		intensifiers: defaultIntensifiers,
		negations:    defaultNegations,
	}
}

// Sentiment implements SentimentScorer.
func (l *LexiconSentiment) Sentiment(_ context.Context, text string) (float64, float64, error) {
	words := wordsOf(text)

	var polSum, subjSum float64
	matched := 0
	scale := 1.0
	negate := false

	for _, w := range words {
		if _, ok := l.negations[w]; ok || strings.HasSuffix(w, "n't") {
			negate = true
			continue
		}
		if f, ok := l.intensifiers[w]; ok {
			scale *= f
			continue
		}

		entry, ok := l.lexicon[w]
		if !ok {
			scale = 1.0
			negate = false
			continue
		}

		p := entry.polarity * scale
		s := entry.subjectivity * scale
		if negate {
			p *= -0.5
		}
		polSum += clamp(p, -1, 1)
		subjSum += clamp(s, 0, 1)
		matched++

		scale = 1.0
		negate = false
	}

	if matched == 0 {
		return 0, 0, nil
	}
	return round2(polSum / float64(matched)), round2(subjSum / float64(matched)), nil
}

var defaultNegations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nor": {}, "without": {},
}

var defaultIntensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"highly":     1.3,
	"quite":      1.1,
	"so":         1.2,
	"too":        1.2,
	"incredibly": 1.5,
	"slightly":   0.5,
	"somewhat":   0.7,
	"barely":     0.4,
}

var defaultLexicon = map[string]lexEntry{
	"good":          {0.7, 0.6},
	"great":         {0.8, 0.75},
	"excellent":     {1.0, 1.0},
	"amazing":       {0.6, 0.9},
	"awesome":       {1.0, 1.0},
	"wonderful":     {1.0, 1.0},
	"fantastic":     {0.4, 0.9},
	"best":          {1.0, 0.3},
	"better":        {0.5, 0.5},
	"nice":          {0.6, 1.0},
	"happy":         {0.8, 1.0},
	"glad":          {0.5, 1.0},
	"love":          {0.5, 0.6},
	"like":          {0.1, 0.2},
	"beautiful":     {0.85, 1.0},
	"positive":      {0.23, 0.55},
	"successful":    {0.75, 0.95},
	"success":       {0.3, 0.0},
	"effective":     {0.6, 0.8},
	"efficient":     {0.5, 0.6},
	"helpful":       {0.5, 0.5},
	"useful":        {0.3, 0.0},
	"important":     {0.4, 1.0},
	"significant":   {0.38, 0.88},
	"strong":        {0.43, 0.73},
	"clear":         {0.1, 0.38},
	"easy":          {0.43, 0.83},
	"simple":        {0.0, 0.36},
	"quick":         {0.33, 0.5},
	"fast":          {0.2, 0.6},
	"new":           {0.14, 0.45},
	"interesting":   {0.5, 0.5},
	"impressive":    {1.0, 1.0},
	"remarkable":    {0.75, 0.75},
	"promising":     {0.4, 0.7},
	"improved":      {0.3, 0.4},
	"safe":          {0.5, 0.5},
	"fair":          {0.7, 0.9},
	"free":          {0.4, 0.8},
	"lucky":         {0.33, 1.0},
	"bad":           {-0.7, 0.67},
	"worse":         {-0.4, 0.6},
	"worst":         {-1.0, 1.0},
	"terrible":      {-1.0, 1.0},
	"awful":         {-1.0, 1.0},
	"horrible":      {-1.0, 1.0},
	"poor":          {-0.4, 0.6},
	"sad":           {-0.5, 1.0},
	"angry":         {-0.5, 1.0},
	"hate":          {-0.8, 0.9},
	"wrong":         {-0.5, 0.9},
	"negative":      {-0.3, 0.4},
	"difficult":     {-0.5, 1.0},
	"hard":          {-0.29, 0.54},
	"slow":          {-0.3, 0.39},
	"weak":          {-0.38, 0.63},
	"dangerous":     {-0.6, 0.9},
	"harmful":       {-0.5, 0.8},
	"failed":        {-0.5, 0.3},
	"broken":        {-0.4, 0.4},
	"problematic":   {-0.5, 0.7},
	"serious":       {-0.33, 0.67},
	"severe":        {-0.5, 0.8},
	"disappointing": {-0.6, 0.7},
	"boring":        {-1.0, 1.0},
	"ugly":          {-0.7, 1.0},
	"unfortunate":   {-0.5, 1.0},
	"crisis":        {-0.4, 0.5},
	"risky":         {-0.4, 0.6},
	"old":           {0.1, 0.2},
	"large":         {0.21, 0.43},
	"small":         {-0.25, 0.4},
	"big":           {0.0, 0.1},
	"quickly":       {0.33, 0.5},
	"well":          {0.2, 0.3},
}
