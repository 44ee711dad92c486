package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/creditscore-pro/grcdump/schema"
	"github.com/creditscore-pro/grcdump/sqldump"
)

// Writer writes the full artifact set for one extraction run: the
// consolidated JSON, the CSV, optionally the parquet file, and one JSON
// file per cooperative under the balances subdirectory. Existing files
// at the target paths are overwritten.
type Writer struct {
	dir         string
	balancesDir string
	source      string
	parquet     bool
	log         *zap.Logger
}

// NewWriter creates a Writer rooted at dir. balancesDir is the name of the
// per-cooperative subdirectory, source the dump file name recorded in the
// export metadata. A nil logger disables logging.
func NewWriter(dir, balancesDir, source string, withParquet bool, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{
		dir:         dir,
		balancesDir: balancesDir,
		source:      source,
		parquet:     withParquet,
		log:         log,
	}
}

// WriteAll writes every artifact and returns the paths written, in write
// order. It stops at the first failure.
func (w *Writer) WriteAll(records []sqldump.Record) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(w.dir, w.balancesDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var paths []string

	jsonPath := filepath.Join(w.dir, schema.TableName+".json")
	if err := w.writeFile(jsonPath, NewJSONFormatter(nil, w.source), records); err != nil {
		return paths, err
	}
	paths = append(paths, jsonPath)

	csvPath := filepath.Join(w.dir, schema.TableName+".csv")
	if err := w.writeFile(csvPath, NewCSVFormatter(nil), records); err != nil {
		return paths, err
	}
	paths = append(paths, csvPath)

	if w.parquet {
		parquetPath := filepath.Join(w.dir, schema.TableName+".parquet")
		if err := w.writeFile(parquetPath, NewParquetFormatter(nil), records); err != nil {
			return paths, err
		}
		paths = append(paths, parquetPath)
	}

	groupPaths, err := w.writeGroups(records)
	paths = append(paths, groupPaths...)
	if err != nil {
		return paths, err
	}

	return paths, nil
}

// writeFile formats records into path through the given formatter.
func (w *Writer) writeFile(path string, formatter Formatter, records []sqldump.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	formatter.SetOutput(f)
	formatErr := formatter.Format(records)
	closeErr := f.Close()

	if formatErr != nil {
		return fmt.Errorf("failed to write %s: %w", path, formatErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", path, closeErr)
	}

	w.log.Debug("artifact written", zap.String("path", path), zap.Int("records", len(records)))
	return nil
}

// writeGroups writes one JSON document per cooperative, smallest id first.
func (w *Writer) writeGroups(records []sqldump.Record) ([]string, error) {
	groups := sqldump.GroupByCooperativa(records)

	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var paths []string
	for _, id := range ids {
		doc := CooperativaExport{
			Cooperativa:    id,
			TotalRegistros: len(groups[id]),
			Periodos:       groups[id],
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return paths, fmt.Errorf("failed to marshal cooperative %d: %w", id, err)
		}

		path := filepath.Join(w.dir, w.balancesDir, fmt.Sprintf("cooperativa_%d.json", id))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)

		w.log.Debug("cooperative file written",
			zap.Int64("cooperativa", id),
			zap.Int("records", len(groups[id])),
			zap.String("path", path))
	}

	return paths, nil
}
