package dataset

import (
	"context"
	"encoding/json"
	"os"

	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
)

// FileLoader reads a series from a local JSON file holding an array of
// entries.
type FileLoader struct{}

// Load reads and decodes the series at path.
func (l *FileLoader) Load(ctx context.Context, path string) (chart.Series, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "no data file at %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading %s", path)
	}

	var series chart.Series
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decoding series from %s", path)
	}
	return series, nil
}
