package analysis

import (
	"sort"
	"strings"

	"github.com/nguyentantai21042004/deepthink/internal/model"
)

// TopWords returns the n most frequent whitespace-separated tokens of text.
// Counting is case-sensitive; equal counts keep first-appearance order.
func TopWords(text string, n int) []model.WordCount {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range strings.Fields(text) {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	items := make([]model.WordCount, 0, len(order))
	for _, w := range order {
		items = append(items, model.WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})

	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
