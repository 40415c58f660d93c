// Package pinyin_key derives lookup keys from Chinese text. A key is the
// concatenation of the text's pinyin syllables, tone markers stripped, with a
// length-tiered truncation that keeps long texts from producing unwieldy
// identifiers.
package pinyin_key

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

var args = func() pinyin.Args {
	a := pinyin.NewArgs()
	// Non-Han runes pass through as their own syllable, so mixed text like
	// "确定ok" still yields a stable key.
	a.Fallback = func(r rune, a pinyin.Args) []string {
		return []string{string(r)}
	}
	return a
}()

// Generate derives the key for text. Pure and deterministic; distinct texts
// may collide, which is documented behavior and not detected here.
func Generate(text string) string {
	syllables := make([]string, 0, len(text)/3)
	for _, group := range pinyin.Pinyin(text, args) {
		if len(group) > 0 {
			syllables = append(syllables, group[0])
		}
	}
	keep := keepLetters(len(syllables))
	var b strings.Builder
	for _, s := range syllables {
		b.WriteString(truncate(s, keep))
	}
	return b.String()
}

// keepLetters returns how many leading letters of each syllable survive; zero
// means the syllable is kept in full.
func keepLetters(n int) int {
	switch {
	case n >= 16:
		return 1
	case n >= 8:
		return 2
	case n >= 4:
		return 4
	default:
		return 0
	}
}

func truncate(s string, keep int) string {
	if keep == 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= keep {
		return s
	}
	return string(runes[:keep])
}
