package estoque

import "github.com/shopspring/decimal"

// casasCusto é a precisão fixa do custo médio; limita a deriva de
// arredondamento entre entradas sucessivas.
const casasCusto = 4

// aliquotaDifal é o diferencial de alíquota aplicado sobre o custo de compra
// de produtos fornecidos de fora do estado (repasse interestadual). Aplicado
// uniformemente quando o produto está marcado, independente da origem real
// do embarque.
var aliquotaDifal = decimal.NewFromFloat(0.06)

// CustoMedio calcula o novo custo médio ponderado após uma entrada.
// NovoCusto = ((SaldoAtual * CustoAtual) + (QtdEntrada * CustoEntrada)) / (SaldoAtual + QtdEntrada)
// Com saldo atual zero (ou negativo, caso degenerado) o custo médio vira o
// custo da entrada: não se mistura com uma média antiga que já não
// corresponde a estoque nenhum.
func CustoMedio(saldoAtual, custoAtual, qtdEntrada, custoEntrada decimal.Decimal) decimal.Decimal {
	if saldoAtual.LessThanOrEqual(decimal.Zero) {
		return custoEntrada.Round(casasCusto)
	}
	soma := saldoAtual.Add(qtdEntrada)
	if soma.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := saldoAtual.Mul(custoAtual).Add(qtdEntrada.Mul(custoEntrada))
	return num.Div(soma).Round(casasCusto)
}

// CustoComDifal devolve o custo unitário de entrada com o DIFAL embutido
// quando o produto é fornecido de fora do estado.
func CustoComDifal(custoUnitario decimal.Decimal, foraDoEstado bool) decimal.Decimal {
	if !foraDoEstado {
		return custoUnitario
	}
	return custoUnitario.Mul(decimal.NewFromInt(1).Add(aliquotaDifal)).Round(casasCusto)
}
