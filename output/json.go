package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/creditscore-pro/grcdump/sqldump"
)

// Metadata describes one extraction run.
type Metadata struct {
	TotalRecords      int    `json:"total_records"`
	TotalCooperativas int    `json:"total_cooperativas"`
	Fonte             string `json:"fonte"`
	DataExtracao      string `json:"data_extracao"`
	ExtractionID      string `json:"extraction_id"`
}

// Export is the consolidated JSON document: run metadata plus the flat
// record list.
type Export struct {
	Metadata Metadata         `json:"metadata"`
	Data     []sqldump.Record `json:"data"`
}

// CooperativaExport is the per-cooperative JSON document.
type CooperativaExport struct {
	Cooperativa    int64            `json:"cooperativa"`
	TotalRegistros int              `json:"total_registros"`
	Periodos       []sqldump.Record `json:"periodos"`
}

// NewExport builds the consolidated document for a record set. The source
// is the dump file name recorded in the metadata; every run gets a fresh
// extraction id.
func NewExport(records []sqldump.Record, source string) Export {
	return Export{
		Metadata: Metadata{
			TotalRecords:      len(records),
			TotalCooperativas: len(sqldump.GroupByCooperativa(records)),
			Fonte:             source,
			DataExtracao:      time.Now().Format("2006-01-02"),
			ExtractionID:      uuid.NewString(),
		},
		Data: records,
	}
}

// JSONFormatter outputs records as the consolidated JSON document.
type JSONFormatter struct {
	writer io.Writer
	source string
}

// NewJSONFormatter creates a formatter for the consolidated document.
func NewJSONFormatter(w io.Writer, source string) *JSONFormatter {
	return &JSONFormatter{writer: w, source: source}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the consolidated document with two-space indentation.
func (j *JSONFormatter) Format(records []sqldump.Record) error {
	encoder := json.NewEncoder(j.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExport(records, j.source))
}
