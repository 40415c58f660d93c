package pinyin_key_test

import (
	"strings"
	"testing"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/pinyin_key"
)

func expectKey(t *testing.T, text, want string) {
	t.Helper()
	if got := pinyin_key.Generate(text); got != want {
		t.Errorf("Generate(%q) = %q, want %q", text, got, want)
	}
}

func TestGenerateShortTextKeepsFullSyllables(t *testing.T) {
	expectKey(t, "字面量", "zimianliang")
	expectKey(t, "键名", "jianming")
	expectKey(t, "测试", "ceshi")
}

func TestGenerateMixedTextKeepsNonHanRunes(t *testing.T) {
	expectKey(t, "确定ok", "quedingok")
}

func TestGenerateTierBoundaries(t *testing.T) {
	han := func(n int) string { return strings.Repeat("中", n) }

	// Below 4 syllables the full "zhong" survives.
	expectKey(t, han(3), strings.Repeat("zhong", 3))
	// 4 <= n < 8 keeps four letters per syllable.
	expectKey(t, han(4), strings.Repeat("zhon", 4))
	expectKey(t, han(7), strings.Repeat("zhon", 7))
	// 8 <= n < 16 keeps two letters per syllable.
	expectKey(t, han(8), strings.Repeat("zh", 8))
	expectKey(t, han(15), strings.Repeat("zh", 15))
	// The one-letter tier starts at exactly 16.
	expectKey(t, han(16), strings.Repeat("z", 16))
	expectKey(t, han(20), strings.Repeat("z", 20))
}

func TestGenerateIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		// Four characters land in the four-letter tier: "cheng" truncates.
		expectKey(t, "部署成功", "bushuchengong")
		expectKey(t, "确定", "queding")
	}
}
