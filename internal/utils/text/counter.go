// Package text provides small text helpers shared by the domain layer.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode code points in s.
// Length limits on titles and names are expressed in code points, so
// "Café Noir" and "Cafe Noir" both count as 9.
//
// Invalid UTF-8 bytes each count as one rune.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}
