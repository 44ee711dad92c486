package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/creditscore-pro/grcdump/schema"
	"github.com/creditscore-pro/grcdump/sqldump"
)

// CSVFormatter outputs records as CSV with the fixed schema header.
type CSVFormatter struct {
	writer  io.Writer
	columns []string
}

// NewCSVFormatter creates a new CSV formatter. Columns follow the table
// schema order, not alphabetical order, so the header matches the dump.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w, columns: schema.Columns}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes records as CSV. The header row is always written, even
// for an empty record list. Null values become empty cells.
func (c *CSVFormatter) Format(records []sqldump.Record) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(c.columns); err != nil {
		return err
	}

	for _, rec := range records {
		row := make([]string, len(c.columns))
		for i, col := range c.columns {
			row[i] = formatValue(rec[col])
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// formatValue converts a value to string for CSV output
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		// Sanitize against CSV injection by prefixing dangerous characters
		// that could trigger formula execution in spreadsheet applications
		if len(val) > 0 {
			firstChar := val[0]
			if firstChar == '=' || firstChar == '+' || firstChar == '@' || firstChar == '\t' || firstChar == '\r' || firstChar == '\n' || firstChar == '|' {
				return "'" + strings.ReplaceAll(val, "'", "''")
			}
		}
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
