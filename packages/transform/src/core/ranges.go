package core

// RuneRange is an inclusive codepoint range.
type RuneRange struct {
	Lo rune
	Hi rune
}

// HanRanges covers the CJK Unified Ideographs block together with Extension A
// and the Compatibility Ideographs block.
var HanRanges = []RuneRange{
	{0x3400, 0x4DBF},
	{0x4E00, 0x9FFF},
	{0xF900, 0xFAFF},
}

// StrictHanRanges narrows the qualifying test to the classic GBK-era block.
var StrictHanRanges = []RuneRange{
	{0x4E00, 0x9FA5},
}

// HasHan reports whether text contains at least one rune inside ranges.
func HasHan(text string, ranges []RuneRange) bool {
	for _, r := range text {
		for _, rng := range ranges {
			if r >= rng.Lo && r <= rng.Hi {
				return true
			}
		}
	}
	return false
}
