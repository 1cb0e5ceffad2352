package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/deepthink/internal/logger"
	"github.com/nguyentantai21042004/deepthink/internal/model"
)

type fixedSentiment struct {
	polarity, subjectivity float64
	err                    error
}

func (f fixedSentiment) Sentiment(context.Context, string) (float64, float64, error) {
	return f.polarity, f.subjectivity, f.err
}

type fixedReadability struct {
	score float64
	err   error
}

func (f fixedReadability) Readability(context.Context, string) (float64, error) {
	return f.score, f.err
}

type panickingReadability struct{}

func (panickingReadability) Readability(context.Context, string) (float64, error) {
	panic("scorer crashed")
}

func TestTopWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want []model.WordCount
	}{
		{
			name: "orders by count then first appearance",
			text: "a b a c b a",
			n:    10,
			want: []model.WordCount{{Word: "a", Count: 3}, {Word: "b", Count: 2}, {Word: "c", Count: 1}},
		},
		{
			name: "tie keeps first appearance",
			text: "z y x y z x",
			n:    10,
			want: []model.WordCount{{Word: "z", Count: 2}, {Word: "y", Count: 2}, {Word: "x", Count: 2}},
		},
		{
			name: "case sensitive",
			text: "Go go GO go",
			n:    10,
			want: []model.WordCount{{Word: "go", Count: 2}, {Word: "Go", Count: 1}, {Word: "GO", Count: 1}},
		},
		{
			name: "punctuation is part of the token",
			text: "end. end end.",
			n:    10,
			want: []model.WordCount{{Word: "end.", Count: 2}, {Word: "end", Count: 1}},
		},
		{
			name: "empty",
			text: "   ",
			n:    10,
			want: []model.WordCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopWords(tt.text, tt.n))
		})
	}
}

func TestTopWordsCapsAtLimit(t *testing.T) {
	text := "w1 w2 w3 w4 w5 w6 w7 w8 w9 w10 w11 w12 w12"
	top := TopWords(text, model.TopWordsLimit)

	require.Len(t, top, 10)
	assert.Equal(t, model.WordCount{Word: "w12", Count: 2}, top[0])
	assert.Equal(t, "w1", top[1].Word)
	assert.Equal(t, "w9", top[9].Word)
}

func TestAnalyzeUsesScorerValues(t *testing.T) {
	suite := New(fixedSentiment{polarity: 0.25, subjectivity: 0.6}, fixedReadability{score: 71.5}, logger.Nop())

	report := suite.Analyze(context.Background(), "a b a c b a")

	assert.Equal(t, 0.25, report.Polarity)
	assert.Equal(t, 0.6, report.Subjectivity)
	assert.Equal(t, 71.5, report.Readability)
	assert.Equal(t, []model.WordCount{{Word: "a", Count: 3}, {Word: "b", Count: 2}, {Word: "c", Count: 1}}, report.TopWords)
	assert.Empty(t, report.Degraded)
}

func TestAnalyzeDegradesFailingScorers(t *testing.T) {
	tests := []struct {
		name         string
		sentiment    SentimentScorer
		readability  ReadabilityScorer
		wantDegraded []string
	}{
		{
			name:         "sentiment error",
			sentiment:    fixedSentiment{polarity: 0.9, err: errors.New("offline")},
			readability:  fixedReadability{score: 50},
			wantDegraded: []string{AnalysisSentiment},
		},
		{
			name:         "readability panics",
			sentiment:    fixedSentiment{polarity: 0.1, subjectivity: 0.2},
			readability:  panickingReadability{},
			wantDegraded: []string{AnalysisReadability},
		},
		{
			name:         "no scorers",
			wantDegraded: []string{AnalysisSentiment, AnalysisReadability},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suite := New(tt.sentiment, tt.readability, logger.Nop())
			report := suite.Analyze(context.Background(), "one two two")

			assert.Equal(t, tt.wantDegraded, report.Degraded)
			assert.Len(t, report.TopWords, 2)
			for _, d := range report.Degraded {
				switch d {
				case AnalysisSentiment:
					assert.Zero(t, report.Polarity)
					assert.Zero(t, report.Subjectivity)
				case AnalysisReadability:
					assert.Zero(t, report.Readability)
				}
			}
		})
	}
}

func TestAnalyzeClampsOutOfRangeScores(t *testing.T) {
	suite := New(fixedSentiment{polarity: -3, subjectivity: 1.7}, fixedReadability{score: -20}, logger.Nop())
	report := suite.Analyze(context.Background(), "x")

	assert.Equal(t, -1.0, report.Polarity)
	assert.Equal(t, 1.0, report.Subjectivity)
	assert.Equal(t, -20.0, report.Readability)
}

func TestLexiconSentiment(t *testing.T) {
	s := NewLexiconSentiment()
	ctx := context.Background()

	p, subj, err := s.Sentiment(ctx, "The results were excellent and the team was happy.")
	require.NoError(t, err)
	assert.Greater(t, p, 0.5)
	assert.Greater(t, subj, 0.5)

	p, _, err = s.Sentiment(ctx, "This was a terrible, awful outcome.")
	require.NoError(t, err)
	assert.Less(t, p, -0.5)

	p, _, err = s.Sentiment(ctx, "The food was not good.")
	require.NoError(t, err)
	assert.Less(t, p, 0.0)

	p, subj, err = s.Sentiment(ctx, "The meeting is at noon on Tuesday.")
	require.NoError(t, err)
	assert.Zero(t, p)
	assert.Zero(t, subj)

	plain, _, _ := s.Sentiment(ctx, "good")
	strong, _, _ := s.Sentiment(ctx, "very good")
	assert.Greater(t, strong, plain)
}

func TestFleschReadability(t *testing.T) {
	ctx := context.Background()

	easy, err := Flesch{}.Readability(ctx, "The cat sat on the mat. The dog ran.")
	require.NoError(t, err)
	hard, err := Flesch{}.Readability(ctx, "Interdisciplinary collaboration necessitates comprehensive organizational restructuring.")
	require.NoError(t, err)

	assert.Greater(t, easy, 90.0)
	assert.Less(t, hard, 0.0)
	assert.Greater(t, easy, hard)

	_, err = Flesch{}.Readability(ctx, "  ... ")
	assert.Error(t, err)
}

func TestCountSyllables(t *testing.T) {
	tests := map[string]int{
		"cat":       1,
		"table":     2,
		"make":      1,
		"readable":  3,
		"rhythm":    1,
		"beautiful": 3,
		"the":       1,
	}
	for word, want := range tests {
		assert.Equal(t, want, countSyllables(word), word)
	}
}

func TestCountSentences(t *testing.T) {
	assert.Equal(t, 2, countSentences("One. Two!"))
	assert.Equal(t, 1, countSentences("Wait?!"))
	assert.Equal(t, 2, countSentences("First. then trailing"))
	assert.Equal(t, 1, countSentences("no terminator"))
}
