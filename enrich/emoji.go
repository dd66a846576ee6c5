package enrich

import "strings"

// emojiRanges are the rune ranges stripped by RemoveEmoji. The list is a
// fixed contract, not the Unicode emoji property: U+24C2..U+1F251 sweeps in
// enclosed alphanumerics and CJK enclosed symbols on purpose.
var emojiRanges = [...][2]rune{
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F300, 0x1F5FF}, // symbols & pictographs
	{0x1F680, 0x1F6FF}, // transport & map symbols
	{0x1F1E0, 0x1F1FF}, // flags
	{0x2702, 0x27B0},   // dingbats
	{0x24C2, 0x1F251},  // enclosed characters
}

// RemoveEmoji returns text with every rune inside emojiRanges dropped and
// all other runes unchanged. It is pure and idempotent.
func RemoveEmoji(text string) string {
	return strings.Map(func(r rune) rune {
		for _, rg := range emojiRanges {
			if r >= rg[0] && r <= rg[1] {
				return -1
			}
		}
		return r
	}, text)
}
