package sqldump

import (
	"fmt"
	"strings"
)

// testTuple builds one full 62-field tuple body for the target table.
func testTuple(coop, ano, mes int64, justificativa string) string {
	values := []string{"3", "1",
		fmt.Sprintf("%d", coop), fmt.Sprintf("%d", ano), fmt.Sprintf("%d", mes)}

	for i := 0; i < 25; i++ { // notas
		values = append(values, fmt.Sprintf("%d", i%10))
	}
	for i := 0; i < 25; i++ { // alertas
		values = append(values, fmt.Sprintf("%d", i%2))
	}

	// total, nu_justificativa, nu_plano, tx_justificativa, tx_plano,
	// st_justificativa, st_plano
	values = append(values, "42", "1", "1",
		"'"+justificativa+"'", "'plano de acao'", "0", "1")

	return strings.Join(values, ",")
}

// testDump wraps tuples into a single INSERT statement for the target table.
func testDump(tuples ...string) string {
	return "INSERT INTO `alerta_cooperativa_sicoob` VALUES (" +
		strings.Join(tuples, "),(") + ");\n"
}
