package binner

import (
	"github.com/dasdy/histogrammer/model"
)

// Bin counts the ASCII letters of text case-insensitively. Any other byte,
// including every byte of a multi-byte UTF-8 sequence, is skipped.
func Bin(text string) (model.FrequencyTable, int) {
	table := make(model.FrequencyTable)
	peak := 0

	for i := range len(text) {
		c := text[i]
		if !isLetter(c) {
			continue
		}

		peak = max(peak, table.Add(model.Symbol(toLower(c))))
	}

	return table, peak
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
