// Package sqldump extracts rows of the alerta_cooperativa_sicoob table
// from a MySQL dump file.
//
// Extraction is a three step pipeline: locate the INSERT statements for
// the target table, split each VALUES clause into per-row tuples, and
// tokenize every tuple into typed fields following the fixed column
// schema. Rows whose field count does not match the schema are dropped
// and tallied, never surfaced as errors.
//
// Example usage:
//
//	res := sqldump.Parse(dumpText)
//	for coop, records := range sqldump.GroupByCooperativa(res.Records) {
//	    fmt.Println(coop, len(records))
//	}
package sqldump
