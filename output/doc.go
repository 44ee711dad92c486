// Package output produces the export artifacts for parsed records.
//
// Three formatters share the Formatter interface: a consolidated JSON
// document (metadata plus the flat record list), a CSV file with the
// fixed schema header, and a Parquet file with one optional column per
// schema column. The Writer orchestrates writing every artifact to an
// output directory on disk, including the per-cooperative JSON files
// under the balances subdirectory, overwriting whatever is already
// there.
//
// # Basic Usage
//
// Format records to any destination:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(records); err != nil {
//	    log.Fatal(err)
//	}
//
// Write the full artifact set:
//
//	w := output.NewWriter("data", "balances", "grc-web.sql", true, logger)
//	paths, err := w.WriteAll(records)
package output

import (
	"io"

	"github.com/creditscore-pro/grcdump/sqldump"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to convert records to the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes records in the formatter's specific format
	Format(records []sqldump.Record) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
