// Package pdf implementa a geração do recibo de pagamento em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  RECIBO DE PAGAMENTO + Data             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTA: descrição, parcela, contraparte, banco              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VALOR PAGO em destaque                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Rodapé: identificação da conta                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gestorlite/erp-api/internal/application/financeiro"
	"github.com/gestorlite/erp-api/internal/domain/entity"
)

var (
	corPrimaria = &props.Color{Red: 16, Green: 92, Blue: 60}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ financeiro.GeradorRecibo = (*ReciboMaroto)(nil)

// ReciboMaroto implementa financeiro.GeradorRecibo usando Maroto v2.
type ReciboMaroto struct{}

// NewReciboMaroto constrói o gerador.
func NewReciboMaroto() *ReciboMaroto { return &ReciboMaroto{} }

// GerarRecibo gera o PDF e devolve os bytes.
func (g *ReciboMaroto) GerarRecibo(_ context.Context, dados financeiro.ReciboDados) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Pagamento", true).
		WithAuthor(dados.Empresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(dados))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(detalheRows(dados)...)
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(valorRow(dados))
	m.AddRows(line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}))
	m.AddRows(rodapeRow(dados))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// cabecalhoRow: empresa (esq) e título + data (dir).
func cabecalhoRow(dados financeiro.ReciboDados) core.Row {
	data := dados.DataPagamento.Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(dados.Empresa, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PAGAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: corPrimaria, Top: 1,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: corCinza,
			}),
		),
	)
}

// detalheRows: descrição da conta, parcela, contraparte e banco.
func detalheRows(dados financeiro.ReciboDados) []core.Row {
	linha := func(rotulo, valor string) core.Row {
		return row.New(7).Add(
			col.New(3).Add(text.New(rotulo, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Color: corPrimaria,
			})),
			col.New(9).Add(text.New(valor, props.Text{Size: 9, Top: 1})),
		)
	}

	papel := "Fornecedor"
	if dados.Tipo == entity.ContaReceber {
		papel = "Cliente"
	}
	rows := []core.Row{
		linha("Descrição", dados.Descricao),
	}
	if dados.ParcelaTotal > 1 {
		rows = append(rows, linha("Parcela", fmt.Sprintf("%d de %d", dados.ParcelaNumero, dados.ParcelaTotal)))
	}
	if dados.Contraparte != "" {
		rows = append(rows, linha(papel, dados.Contraparte))
	}
	if dados.Banco != "" {
		rows = append(rows, linha("Conta bancária", dados.Banco))
	}
	return rows
}

// valorRow: valor pago em destaque.
func valorRow(dados financeiro.ReciboDados) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("VALOR PAGO", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 4, Color: corPrimaria,
			}),
		),
		col.New(6).Add(
			text.New("R$ "+dados.ValorPago.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right,
				Top: 3, Color: corPrimaria,
			}),
		),
	)
}

// rodapeRow: identificação da conta para conferência.
func rodapeRow(dados financeiro.ReciboDados) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Conta %s · valor original R$ %s · guarde este recibo como comprovante.",
				dados.ContaID, dados.Valor.StringFixed(2)),
			props.Text{Size: 6.5, Color: corCinza, Top: 2},
		),
	))
}
