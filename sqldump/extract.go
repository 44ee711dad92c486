package sqldump

import (
	"regexp"
	"strings"

	"github.com/creditscore-pro/grcdump/schema"
)

// insertPattern captures the VALUES clause body of every INSERT statement
// against the target table. Statements for other tables never match.
var insertPattern = regexp.MustCompile(
	"(?s)INSERT INTO `" + schema.TableName + "`" + `.*?VALUES\s*\(([^;]+)\);`)

// tupleBoundary separates consecutive row tuples inside one VALUES clause.
var tupleBoundary = regexp.MustCompile(`\),\s*\(`)

// extractValueClauses returns the body of every matching VALUES clause.
func extractValueClauses(src string) []string {
	matches := insertPattern.FindAllStringSubmatch(src, -1)
	clauses := make([]string, 0, len(matches))
	for _, m := range matches {
		clauses = append(clauses, m[1])
	}
	return clauses
}

// splitTuples splits a VALUES clause body into per-row tuple bodies with
// surrounding parentheses and whitespace removed.
func splitTuples(clause string) []string {
	tuples := tupleBoundary.Split(clause, -1)
	for i, tuple := range tuples {
		tuples[i] = strings.Trim(strings.TrimSpace(tuple), "()")
	}
	return tuples
}
