package output

import (
	"github.com/creditscore-pro/grcdump/schema"
	"github.com/creditscore-pro/grcdump/sqldump"
)

// fullRecord builds a record covering every schema column.
func fullRecord(coop, ano, mes int64, justificativa string) sqldump.Record {
	rec := make(sqldump.Record, len(schema.Columns))
	for i, col := range schema.Columns {
		if schema.ColumnKind(col) == schema.KindText {
			rec[col] = justificativa
			continue
		}
		rec[col] = int64(i % 10)
	}
	rec["cd_sistema"] = int64(3)
	rec["cd_central"] = int64(1)
	rec["cd_cooperativa"] = coop
	rec["ano"] = ano
	rec["mes"] = mes
	return rec
}
