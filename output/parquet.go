package output

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/creditscore-pro/grcdump/schema"
	"github.com/creditscore-pro/grcdump/sqldump"
)

// ParquetFormatter outputs records as a parquet file whose schema mirrors
// the table schema with all columns optional.
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes records as parquet. Null fields are left unset so they
// surface as missing optional values.
func (p *ParquetFormatter) Format(records []sqldump.Record) error {
	writer := parquet.NewGenericWriter[map[string]interface{}](p.writer, tableSchema())

	for _, rec := range records {
		row := make(map[string]interface{}, len(rec))
		for col, val := range rec {
			if val != nil {
				row[col] = val
			}
		}
		if _, err := writer.Write([]map[string]interface{}{row}); err != nil {
			return fmt.Errorf("failed to write parquet row: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	return nil
}

// tableSchema maps the fixed column layout onto an all-optional parquet
// schema: INT64 for integer columns, UTF8 byte arrays for text.
func tableSchema() *parquet.Schema {
	group := parquet.Group{}
	for _, col := range schema.Columns {
		switch schema.ColumnKind(col) {
		case schema.KindText:
			group[col] = parquet.Optional(parquet.String())
		default:
			group[col] = parquet.Optional(parquet.Int(64))
		}
	}
	return parquet.NewSchema(schema.TableName, group)
}
