package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain/entity"
)

// ProcessarNotaRequest body para POST /api/fiscal/notas/:id/processar.
type ProcessarNotaRequest struct {
	FilialID string `json:"filial_id" validate:"required"`
}

// NotaFiscalResponse saída de uma nota de entrada.
type NotaFiscalResponse struct {
	ID               string          `json:"id"`
	FornecedorCNPJ   string          `json:"fornecedor_cnpj"`
	FornecedorNome   string          `json:"fornecedor_nome"`
	Numero           string          `json:"numero"`
	ValorProdutos    decimal.Decimal `json:"valor_produtos"`
	ValorTotal       decimal.Decimal `json:"valor_total"`
	ValorICMS        decimal.Decimal `json:"valor_icms"`
	Status           string          `json:"status"`
	MensagemErro     string          `json:"mensagem_erro,omitempty"`
	ItensProcessados int             `json:"itens_processados"`
	ItensIgnorados   int             `json:"itens_ignorados"`
	FilialID         string          `json:"filial_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	ProcessadoEm     *time.Time      `json:"processado_em,omitempty"`
}

// NewNotaFiscalResponse converte a entidade na resposta HTTP.
func NewNotaFiscalResponse(n *entity.NotaFiscal) NotaFiscalResponse {
	return NotaFiscalResponse{
		ID:               n.ID,
		FornecedorCNPJ:   n.FornecedorCNPJ,
		FornecedorNome:   n.FornecedorNome,
		Numero:           n.Numero,
		ValorProdutos:    n.ValorProdutos,
		ValorTotal:       n.ValorTotal,
		ValorICMS:        n.ValorICMS,
		Status:           n.Status,
		MensagemErro:     n.MensagemErro,
		ItensProcessados: n.ItensProcessados,
		ItensIgnorados:   n.ItensIgnorados,
		FilialID:         n.FilialID,
		CreatedAt:        n.CreatedAt,
		ProcessadoEm:     n.ProcessadoEm,
	}
}

// NotaItemResponse saída de uma linha da nota.
type NotaItemResponse struct {
	ID            string          `json:"id"`
	Codigo        string          `json:"codigo"`
	CodigoBarras  string          `json:"codigo_barras"`
	Descricao     string          `json:"descricao"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ProdutoID     string          `json:"produto_id,omitempty"`
}

// NotaDetalheResponse nota com as linhas.
type NotaDetalheResponse struct {
	NotaFiscalResponse
	Itens []NotaItemResponse `json:"itens"`
}

// NewNotaDetalheResponse monta a nota com as linhas.
func NewNotaDetalheResponse(n *entity.NotaFiscal, itens []*entity.NotaFiscalItem) NotaDetalheResponse {
	out := NotaDetalheResponse{NotaFiscalResponse: NewNotaFiscalResponse(n)}
	out.Itens = make([]NotaItemResponse, 0, len(itens))
	for _, i := range itens {
		out.Itens = append(out.Itens, NotaItemResponse{
			ID:            i.ID,
			Codigo:        i.Codigo,
			CodigoBarras:  i.CodigoBarras,
			Descricao:     i.Descricao,
			Quantidade:    i.Quantidade,
			ValorUnitario: i.ValorUnitario,
			ProdutoID:     i.ProdutoID,
		})
	}
	return out
}
