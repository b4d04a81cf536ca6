package estoque_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gestorlite/erp-api/internal/domain/estoque"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// CustoMedio: média ponderada entre o saldo atual e a entrada
// ──────────────────────────────────────────────────────────────────────────────

// Caso canônico: 10 un a 10,00 + 10 un a 20,00 → custo médio 15,0000.
func TestCustoMedio_PonderaSaldoEEntrada(t *testing.T) {
	novo := estoque.CustoMedio(dec("10"), dec("10.00"), dec("10"), dec("20.00"))
	assert.True(t, dec("15").Equal(novo), "esperado 15, obtido %s", novo)
}

// Saldo zero: o custo médio vira o custo da entrada, sem misturar com a
// média antiga (que já não corresponde a estoque nenhum).
func TestCustoMedio_SaldoZeroAssumeCustoDaEntrada(t *testing.T) {
	novo := estoque.CustoMedio(decimal.Zero, dec("99.99"), dec("5"), dec("7.30"))
	assert.True(t, dec("7.30").Equal(novo), "esperado 7.30, obtido %s", novo)
}

// Saldo negativo (caso degenerado de ajustes) recebe o mesmo tratamento do
// saldo zero.
func TestCustoMedio_SaldoNegativoAssumeCustoDaEntrada(t *testing.T) {
	novo := estoque.CustoMedio(dec("-3"), dec("12.00"), dec("10"), dec("8.00"))
	assert.True(t, dec("8").Equal(novo), "esperado 8, obtido %s", novo)
}

// Dízima arredondada em 4 casas: 1 un a 1,00 + 2 un a 2,00 → 5/3 = 1,6667.
func TestCustoMedio_ArredondaEmQuatroCasas(t *testing.T) {
	novo := estoque.CustoMedio(dec("1"), dec("1.00"), dec("2"), dec("2.00"))
	assert.Equal(t, "1.6667", novo.StringFixed(4))
}

// Propriedade básica: entrada ao mesmo custo do saldo não muda a média.
func TestCustoMedio_EntradaAoMesmoCustoNaoAltera(t *testing.T) {
	novo := estoque.CustoMedio(dec("42"), dec("3.5000"), dec("8"), dec("3.5000"))
	assert.True(t, dec("3.5").Equal(novo), "esperado 3.5, obtido %s", novo)
}

// Quantidades fracionadas (kg, litro) entram na ponderação normalmente.
func TestCustoMedio_QuantidadeFracionada(t *testing.T) {
	// 2,5 kg a 10,00 + 2,5 kg a 14,00 → 12,0000
	novo := estoque.CustoMedio(dec("2.5"), dec("10.00"), dec("2.5"), dec("14.00"))
	assert.True(t, dec("12").Equal(novo), "esperado 12, obtido %s", novo)
}

// ──────────────────────────────────────────────────────────────────────────────
// CustoComDifal: repasse interestadual embutido no custo de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestCustoComDifal_ForaDoEstadoAplicaSeisPorCento(t *testing.T) {
	custo := estoque.CustoComDifal(dec("100.00"), true)
	assert.True(t, dec("106").Equal(custo), "esperado 106, obtido %s", custo)
}

func TestCustoComDifal_DentroDoEstadoNaoAltera(t *testing.T) {
	custo := estoque.CustoComDifal(dec("100.00"), false)
	assert.True(t, dec("100").Equal(custo), "esperado 100, obtido %s", custo)
}

func TestCustoComDifal_ArredondaEmQuatroCasas(t *testing.T) {
	// 10,555 * 1,06 = 11,1883
	custo := estoque.CustoComDifal(dec("10.555"), true)
	assert.Equal(t, "11.1883", custo.StringFixed(4))
}
