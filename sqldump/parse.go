package sqldump

import (
	"strconv"
	"strings"

	"github.com/creditscore-pro/grcdump/schema"
)

// Record is one parsed table row keyed by column name. Values are int64,
// string, or nil. Records are never mutated after parsing.
type Record map[string]interface{}

// Result holds the outcome of parsing one dump file.
type Result struct {
	// Records are the rows that matched the full column schema, in dump order.
	Records []Record
	// Dropped counts tuples discarded for not matching the column count.
	Dropped int
}

// Parse extracts every row of the target table from raw SQL dump text.
//
// Tuples whose field count differs from the schema are dropped silently
// and only reflected in Result.Dropped; malformed input never produces
// an error.
func Parse(src string) *Result {
	res := &Result{}

	for _, clause := range extractValueClauses(src) {
		for _, tuple := range splitTuples(clause) {
			fields := newTupleScanner(tuple).scan()
			if len(fields) != len(schema.Columns) {
				res.Dropped++
				continue
			}

			rec := make(Record, len(schema.Columns))
			for i, col := range schema.Columns {
				rec[col] = coerce(col, fields[i])
			}
			res.Records = append(res.Records, rec)
		}
	}

	return res
}

// coerce converts a raw field into its typed value for the given column.
// Empty quoted literals and unquoted NULL become nil. Integer columns
// yield int64 or nil, never strings.
func coerce(col string, f field) interface{} {
	if f.quoted && f.value == "" {
		return nil
	}
	if !f.quoted && strings.EqualFold(f.value, "NULL") {
		return nil
	}

	if schema.ColumnKind(col) == schema.KindInt {
		n, err := strconv.ParseInt(f.value, 10, 64)
		if err != nil {
			return nil
		}
		return n
	}

	return f.value
}

// GroupByCooperativa partitions records by their cooperative id. Records
// whose id is null group under 0 so that the union of all groups always
// equals the full record set.
func GroupByCooperativa(records []Record) map[int64][]Record {
	groups := make(map[int64][]Record)
	for _, rec := range records {
		id, _ := rec[schema.EntityKey].(int64)
		groups[id] = append(groups[id], rec)
	}
	return groups
}
