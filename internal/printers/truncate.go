package printers

import "strings"

// DescriptionWidth is the number of characters of a description shown in a table.
const DescriptionWidth = 40

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// Truncate cuts s to at most n Unicode code points. A multi-byte character is
// either kept whole or dropped, so the result is always valid UTF-8 when s is.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// Flatten replaces line breaks and tabs with spaces so a value fits one table cell.
func Flatten(s string) string {
	return lineBreaks.Replace(s)
}
