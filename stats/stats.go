// Package stats computes and renders run statistics for an extraction.
package stats

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/creditscore-pro/grcdump/sqldump"
)

// Summary aggregates one extraction run.
type Summary struct {
	TotalRecords int
	DroppedRows  int
	Cooperativas int
	CoopMin      int64
	CoopMax      int64
	YearMin      int64
	YearMax      int64
}

// Summarize computes the summary for a parse result. Records with null
// ids or years are counted but excluded from the ranges.
func Summarize(res *sqldump.Result) Summary {
	s := Summary{
		TotalRecords: len(res.Records),
		DroppedRows:  res.Dropped,
	}

	coops := make(map[int64]bool)
	for _, rec := range res.Records {
		if id, ok := rec["cd_cooperativa"].(int64); ok {
			if !coops[id] {
				coops[id] = true
				if s.Cooperativas == 0 || id < s.CoopMin {
					s.CoopMin = id
				}
				if id > s.CoopMax {
					s.CoopMax = id
				}
				s.Cooperativas++
			}
		}
		if ano, ok := rec["ano"].(int64); ok {
			if s.YearMin == 0 || ano < s.YearMin {
				s.YearMin = ano
			}
			if ano > s.YearMax {
				s.YearMax = ano
			}
		}
	}

	return s
}

// Render writes the summary as a two-column table.
func (s Summary) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})

	table.Append([]string{"Records", fmt.Sprintf("%d", s.TotalRecords)})
	table.Append([]string{"Dropped rows", fmt.Sprintf("%d", s.DroppedRows)})
	table.Append([]string{"Cooperatives", fmt.Sprintf("%d", s.Cooperativas)})
	if s.Cooperativas > 0 {
		table.Append([]string{"Cooperative range", fmt.Sprintf("%d - %d", s.CoopMin, s.CoopMax)})
	}
	if s.YearMin > 0 {
		table.Append([]string{"Period", fmt.Sprintf("%d - %d", s.YearMin, s.YearMax)})
	}

	table.Render()
}
