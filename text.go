package fbtxt

import "strings"

// Splits a string into whitespace separated words, each as a code
// point sequence ready for [MeasureWords](). This is a convenience
// for callers whose input is already UTF-8; callers with other text
// encodings must decode them before reaching the layout core.
func SplitWords(text string) [][]rune {
	fields := strings.Fields(text)
	words := make([][]rune, len(fields))
	for i, field := range fields {
		words[i] = []rune(field)
	}
	return words
}
