package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/export"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/store"
)

func sampleEntries() []store.Entry {
	return []store.Entry{
		{Origin: "确定", Key: "queding", ZhCN: "确定"},
		{Origin: "取消", Key: "quxiao", ZhCN: "取消"},
	}
}

func TestMarshalCSV(t *testing.T) {
	data, err := export.Marshal("csv", sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, "origin,key,zh_CN\n确定,queding,确定\n取消,quxiao,取消\n", string(data))
}

func TestMarshalJSON(t *testing.T) {
	data, err := export.Marshal("json", sampleEntries())
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "queding", rows[0]["key"])
	assert.Equal(t, "确定", rows[0]["origin"])
	assert.Equal(t, "确定", rows[0]["zh_CN"])
}

func TestMarshalYAML(t *testing.T) {
	data, err := export.Marshal("yaml", sampleEntries())
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, yaml.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "quxiao", rows[1]["key"])
	assert.Equal(t, "取消", rows[1]["zh_CN"])
}

func TestMarshalUnknownFormat(t *testing.T) {
	_, err := export.Marshal("xlsx", sampleEntries())
	assert.Error(t, err)
}

func TestWriteCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, export.Write(path, "csv", sampleEntries()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "queding")
}
