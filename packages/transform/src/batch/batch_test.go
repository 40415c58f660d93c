package batch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/batch"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/rewriter"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/store"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func options(patterns ...string) batch.Options {
	return batch.Options{
		Patterns: patterns,
		Config:   rewriter.DefaultConfig(),
		Logger:   zap.NewNop().Sugar(),
	}
}

func TestRunCollectsOutputs(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.ts", "var a = '确定';")
	writeFile(t, dir, "notes.txt", "var a = '确定';")

	st := store.New()
	res, err := batch.Run(options(filepath.Join(dir, "*")), st)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Rewritten)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, "import i18n from 'i18n';\nvar a = i18n('queding');\n", res.Outputs[a])
	assert.Equal(t, 1, st.Len())

	// Collect-only runs leave the source untouched.
	data, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.Equal(t, "var a = '确定';", string(data))
}

func TestRunWritesInPlace(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.tsx", "const el = <p>中文</p>;")

	opts := options(filepath.Join(dir, "**", "*.tsx"))
	opts.Write = true

	res, err := batch.Run(opts, store.New())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rewritten)
	assert.Empty(t, res.Outputs)

	data, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.Equal(t, "import i18n from 'i18n';\nconst el = <p>{i18n('zhongwen')}</p>;\n", string(data))
}

func TestRunWritesSuffixedCopy(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.ts", "var a = '确定';")

	opts := options(filepath.Join(dir, "*.ts"))
	opts.Suffix = ".i18n"

	_, err := batch.Run(opts, store.New())
	require.NoError(t, err)

	// The original keeps its content; the copy carries the rewrite.
	data, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.Equal(t, "var a = '确定';", string(data))

	copied, err := os.ReadFile(filepath.Join(dir, "a.i18n.ts"))
	require.NoError(t, err)
	assert.Equal(t, "import i18n from 'i18n';\nvar a = i18n('queding');\n", string(copied))
}

func TestRunSkipsUnparsableUnits(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.ts", "var = ;")
	writeFile(t, dir, "ok.ts", "var a = '确定';")

	opts := options(filepath.Join(dir, "*.ts"))
	opts.Write = true

	st := store.New()
	res, err := batch.Run(opts, st)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Rewritten)
	assert.Equal(t, 1, st.Len())

	data, err := os.ReadFile(broken)
	require.NoError(t, err)
	assert.Equal(t, "var = ;", string(data))
}

func TestRunSkipsWriteWhenNothingChanges(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "done.ts", "import i18n from 'i18n';\n")

	res, err := batch.Run(options(filepath.Join(dir, "*.ts")), store.New())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 0, res.Rewritten)
	assert.Empty(t, res.Outputs)
}

func TestRunHonorsExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "var a = '确定';")
	writeFile(t, dir, "a.test.ts", "var a = '确定';")

	opts := options(filepath.Join(dir, "*.ts"))
	opts.Excludes = []string{"**/*.test.ts"}

	res, err := batch.Run(opts, store.New())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
}

func TestRunAggregatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "var a = '确定';")
	writeFile(t, dir, "b.ts", "var b = '确定'; var c = '取消';")

	st := store.New()
	_, err := batch.Run(options(filepath.Join(dir, "*.ts")), st)
	require.NoError(t, err)

	entries := st.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "确定", entries[0].Origin)
	assert.Equal(t, "取消", entries[1].Origin)
}
