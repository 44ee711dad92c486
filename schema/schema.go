// Package schema defines the fixed column layout of the
// alerta_cooperativa_sicoob table found in grc-web dump files.
//
// The table has 62 columns in a fixed order: identification codes and
// period, 25 score indicators (nota_*), 25 alert indicators (alerta_*),
// and auxiliary justification/plan fields. Column names are kept exactly
// as they appear in the dump, including the source's own spelling.
package schema

// TableName is the dump table the extractor targets.
const TableName = "alerta_cooperativa_sicoob"

// EntityKey is the column used to partition records into per-cooperative
// output files.
const EntityKey = "cd_cooperativa"

// Kind classifies how a column's raw SQL literal is coerced.
type Kind int

const (
	// KindInt columns coerce to int64 (or null when empty/unparseable).
	KindInt Kind = iota
	// KindText columns stay as free text.
	KindText
)

// Columns lists every column of the table in dump order.
var Columns = []string{
	"cd_sistema", "cd_central", "cd_cooperativa", "ano", "mes",

	// Score indicators
	"nota_sobras_ou_perdas_sobre_recursos_totais", "nota_inadimplencia",
	"nota_liquidez_na_central", "nota_adto_depositante",
	"nota_custo_fixo_sobre_total_recursos", "nota_tarifas_sobre_custo_fixo",
	"nota_honorarios_e_cedula_sobre_custo_fixo", "nota_folha_encargos_sobre_total_recursos",
	"nota_receita_financeira_sobre_total_recursos", "nota_retorno_carteira_de_credito",
	"nota_despesas_financeiras_sobre_recursos_captados", "nota_despesas_captacao_sobre_dep_prazo",
	"nota_resultado_PCLD_sobre_despesas_totais_mes", "nota_resultado_PCLD_sobre_total_recursos",
	"nota_liquidez_geral", "nota_participacao_capital_proprio",
	"nota_rentabilidade_sobras_sobre_receitas_brutas", "nota_rentabilidade_sobre_capital_proprio",
	"nota_evolucao_quadro_social", "nota_limite_exposicao_por_cliente",
	"nota_concentacao_carteira_credito", "nota_enquadramento_PRE",
	"nota_concentracao_depositos", "nota_imobilizacao_capital_proprio",
	"nota_evolucao_patrimonial",

	// Alert indicators
	"alerta_sobras_ou_perdas_sobre_recursos_totais", "alerta_inadimplencia",
	"alerta_liquidez_na_central", "alerta_adto_depositante",
	"alerta_custo_fixo_sobre_total_recursos", "alerta_tarifas_sobre_custo_fixo",
	"alerta_honorarios_e_cedula_sobre_custo_fixo", "alerta_folha_encargos_sobre_total_recursos",
	"alerta_receita_financeira_sobre_total_recursos", "alerta_retorno_carteira_de_credito",
	"alerta_despesas_financeiras_sobre_recursos_captados", "alerta_despesas_captacao_sobre_dep_prazo",
	"alerta_resultado_PCLD_sobre_despesas_totais_mes", "alerta_resultado_PCLD_sobre_total_recursos",
	"alerta_liquidez_geral", "alerta_participacao_capital_proprio",
	"alerta_rentabilidade_sobras_sobre_receitas_brutas", "alerta_rentabilidade_sobre_capital_proprio",
	"alerta_evolucao_quadro_social", "alerta_limite_exposicao_por_cliente",
	"alerta_concentacao_carteira_credito", "alerta_enquadramento_PRE",
	"alerta_concentracao_depositos", "alerta_imobilizacao_capital_proprio",
	"alerta_evolucao_patrimonial",

	// Auxiliary fields
	"total", "nu_justificativa", "nu_plano",
	"tx_justificativa", "tx_plano", "st_justificativa", "st_plano",
}

var textColumns = map[string]bool{
	"tx_justificativa": true,
	"tx_plano":         true,
}

// ColumnKind returns how the named column's values are coerced.
// Every column except the free-text justification/plan fields is numeric.
func ColumnKind(name string) Kind {
	if textColumns[name] {
		return KindText
	}
	return KindInt
}
