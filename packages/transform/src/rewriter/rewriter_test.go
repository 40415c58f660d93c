package rewriter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/core"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/rewriter"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/store"
)

func transform(t *testing.T, src string) (string, *store.Store) {
	t.Helper()
	st := store.New()
	out, err := rewriter.Transform(src, "test.tsx", rewriter.DefaultConfig(), st)
	require.NoError(t, err)
	return out, st
}

func TestTransformStringLiteral(t *testing.T) {
	out, st := transform(t, "var a = '字面量';")
	assert.Equal(t, "import i18n from 'i18n';\nvar a = i18n('zimianliang');\n", out)

	entries := st.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "字面量", entries[0].Origin)
	assert.Equal(t, "zimianliang", entries[0].Key)
	assert.Equal(t, "字面量", entries[0].ZhCN)
}

func TestTransformLeavesNonHanTextAlone(t *testing.T) {
	out, st := transform(t, "var a = 'hello';")
	assert.Equal(t, "import i18n from 'i18n';\nvar a = 'hello';\n", out)
	assert.Equal(t, 0, st.Len())
}

func TestTransformObjectKeyBecomesComputed(t *testing.T) {
	out, _ := transform(t, "var o = { '键名': 10 };")
	assert.Equal(t, "import i18n from 'i18n';\nvar o = { [i18n('jianming')]: 10 };\n", out)

	out, _ = transform(t, "var o = { 键名: 10 };")
	assert.Equal(t, "import i18n from 'i18n';\nvar o = { [i18n('jianming')]: 10 };\n", out)
}

func TestTransformShorthandKeepsIdentifierValue(t *testing.T) {
	out, _ := transform(t, "var o = { 中文 };")
	assert.Equal(t, "import i18n from 'i18n';\nvar o = { [i18n('zhongwen')]: 中文 };\n", out)
}

func TestTransformTemplateSegments(t *testing.T) {
	out, st := transform(t, "const s = `前缀${x}后缀`;")
	assert.Equal(t,
		"import i18n from 'i18n';\nconst s = `${i18n('qianzhui')}${x}${i18n('houzhui')}`;\n",
		out)

	entries := st.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "前缀", entries[0].Origin)
	assert.Equal(t, "后缀", entries[1].Origin)
}

func TestTransformTaggedTemplateStaysVerbatim(t *testing.T) {
	out, st := transform(t, "const s = tag`样式${name}`;")
	assert.Equal(t, "import i18n from 'i18n';\nconst s = tag`样式${name}`;\n", out)
	assert.Equal(t, 0, st.Len())
}

func TestTransformImportInjectionIsIdempotent(t *testing.T) {
	out, _ := transform(t, "import i18n from 'i18n';\nvar a = '测试';")
	assert.Equal(t, "import i18n from 'i18n';\nvar a = i18n('ceshi');\n", out)

	// A same-named binding from another module does not count.
	out, _ = transform(t, "import i18n from './local';\nvar a = '测试';")
	assert.Equal(t,
		"import i18n from 'i18n';\nimport i18n from './local';\nvar a = i18n('ceshi');\n",
		out)
}

func TestTransformSkipsTypeLevelContexts(t *testing.T) {
	out, st := transform(t, "type T = '类型';\nconst v: T = '类型';")
	assert.Equal(t,
		"import i18n from 'i18n';\ntype T = '类型';\nconst v: T = i18n('leixing');\n",
		out)

	entries := st.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "类型", entries[0].Origin)
}

func TestTransformAsConstRewritesValueSide(t *testing.T) {
	out, _ := transform(t, "const x = '中文' as const;")
	assert.Equal(t, "import i18n from 'i18n';\nconst x = i18n('zhongwen') as const;\n", out)
}

func TestTransformJSXAttributeAndText(t *testing.T) {
	out, st := transform(t, `const el = <div title="标题">中文</div>;`)
	assert.Equal(t,
		"import i18n from 'i18n';\nconst el = <div title={i18n('biaoti')}>{i18n('zhongwen')}</div>;\n",
		out)

	entries := st.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "标题", entries[0].Origin)
	assert.Equal(t, "中文", entries[1].Origin)
}

func TestTransformNormalizesWhitespaceBeforeAggregation(t *testing.T) {
	out, st := transform(t, "var a = '测 试';\nvar b = '测试';")
	assert.Equal(t,
		"import i18n from 'i18n';\nvar a = i18n('ceshi');\nvar b = i18n('ceshi');\n",
		out)

	entries := st.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "测试", entries[0].Origin)
}

func TestTransformCustomLookupWithoutImport(t *testing.T) {
	cfg := rewriter.DefaultConfig()
	cfg.LookupIdentity = "t"
	cfg.AutoImport.Enabled = false

	st := store.New()
	out, err := rewriter.Transform("var a = '确定';", "test.ts", cfg, st)
	require.NoError(t, err)
	assert.Equal(t, "var a = t('queding');\n", out)
}

func TestTransformStrictHanRanges(t *testing.T) {
	cfg := rewriter.DefaultConfig()
	cfg.Ranges = core.StrictHanRanges

	st := store.New()
	out, err := rewriter.Transform("var a = '确定';", "test.ts", cfg, st)
	require.NoError(t, err)
	assert.Equal(t, "import i18n from 'i18n';\nvar a = i18n('queding');\n", out)
}

func TestTransformReportsParseErrors(t *testing.T) {
	st := store.New()
	_, err := rewriter.Transform("var = ;", "broken.js", rewriter.DefaultConfig(), st)
	assert.Error(t, err)
}
