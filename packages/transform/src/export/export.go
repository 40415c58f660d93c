// Package export writes the aggregated translation table.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/google/renameio"
	"gopkg.in/yaml.v3"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/store"
)

// Formats lists the supported table formats.
var Formats = []string{"yaml", "json", "csv"}

type row struct {
	Origin string `yaml:"origin" json:"origin"`
	Key    string `yaml:"key" json:"key"`
	ZhCN   string `yaml:"zh_CN" json:"zh_CN"`
}

// Write renders entries in the given format and writes them to path
// atomically.
func Write(path, format string, entries []store.Entry) error {
	data, err := Marshal(format, entries)
	if err != nil {
		return err
	}
	return renameio.WriteFile(path, data, 0o644)
}

// Marshal renders entries in the given format.
func Marshal(format string, entries []store.Entry) ([]byte, error) {
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row{Origin: e.Origin, Key: e.Key, ZhCN: e.ZhCN})
	}
	switch format {
	case "yaml":
		return yaml.Marshal(rows)
	case "json":
		return json.MarshalIndent(rows, "", "  ")
	case "csv":
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write([]string{"origin", "key", "zh_CN"}); err != nil {
			return nil, err
		}
		for _, r := range rows {
			if err := w.Write([]string{r.Origin, r.Key, r.ZhCN}); err != nil {
				return nil, err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown table format %q", format)
	}
}
