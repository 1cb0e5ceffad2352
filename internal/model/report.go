package model

// TopWordsLimit caps AnalysisReport.TopWords.
const TopWordsLimit = 10

// WordCount is one entry of a word-frequency report.
type WordCount struct {
	Word  string
	Count int
}

// AnalysisReport is the enrichment computed over a summary.
type AnalysisReport struct {
	Polarity     float64
	Subjectivity float64
	Readability  float64
	TopWords     []WordCount
	// Degraded names the analyses that fell back to neutral values.
	Degraded []string
}
