package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// RegistrarMovimentoRequest body para POST /api/estoque/movimentos.
// Quantidade de AJUSTE é assinada; ENTRADA exige valor_unitario.
type RegistrarMovimentoRequest struct {
	ProdutoID     string           `json:"produto_id" validate:"required"`
	FilialID      string           `json:"filial_id" validate:"required"`
	Tipo          string           `json:"tipo" validate:"required,oneof=ENTRADA SAIDA AJUSTE"`
	Quantidade    decimal.Decimal  `json:"quantidade"`
	ValorUnitario *decimal.Decimal `json:"valor_unitario,omitempty"`
	Documento     string           `json:"documento"`
}

// MovimentoResponse saída de um movimento do livro.
type MovimentoResponse struct {
	ID                 string          `json:"id"`
	ProdutoID          string          `json:"produto_id"`
	FilialID           string          `json:"filial_id"`
	Tipo               string          `json:"tipo"`
	Quantidade         decimal.Decimal `json:"quantidade"`
	QuantidadeAnterior decimal.Decimal `json:"quantidade_anterior"`
	ValorUnitario      decimal.Decimal `json:"valor_unitario"`
	ValorTotal         decimal.Decimal `json:"valor_total"`
	Documento          string          `json:"documento"`
	Usuario            string          `json:"usuario"`
	CreatedAt          time.Time       `json:"created_at"`
}

// NewMovimentoResponse converte a entidade na resposta HTTP.
func NewMovimentoResponse(m *entity.MovimentoEstoque) MovimentoResponse {
	return MovimentoResponse{
		ID:                 m.ID,
		ProdutoID:          m.ProdutoID,
		FilialID:           m.FilialID,
		Tipo:               m.Tipo,
		Quantidade:         m.Quantidade,
		QuantidadeAnterior: m.QuantidadeAnterior,
		ValorUnitario:      m.ValorUnitario,
		ValorTotal:         m.ValorTotal,
		Documento:          m.Documento,
		Usuario:            m.Usuario,
		CreatedAt:          m.CreatedAt,
	}
}

// PosicaoResponse saída da posição de estoque de um par produto/filial.
type PosicaoResponse struct {
	ProdutoID     string          `json:"produto_id"`
	FilialID      string          `json:"filial_id"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	QtdReservada  decimal.Decimal `json:"qtd_reservada"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewPosicaoResponse converte a entidade na resposta HTTP.
func NewPosicaoResponse(e *entity.Estoque) PosicaoResponse {
	return PosicaoResponse{
		ProdutoID:     e.ProdutoID,
		FilialID:      e.FilialID,
		Quantidade:    e.Quantidade,
		QtdReservada:  e.QtdReservada,
		EstoqueMinimo: e.EstoqueMinimo,
		UpdatedAt:     e.UpdatedAt,
	}
}

// HistoricoResponse movimentos filtrados mais os totais agregados no banco.
type HistoricoResponse struct {
	Items         []MovimentoResponse `json:"items"`
	TotalEntradas decimal.Decimal     `json:"total_entradas"`
	TotalSaidas   decimal.Decimal     `json:"total_saidas"`
	Saldo         decimal.Decimal     `json:"saldo"`
	Page          PageResponse        `json:"page"`
}

// NewHistoricoResponse monta a resposta do histórico.
func NewHistoricoResponse(movs []*entity.MovimentoEstoque, totais *repository.MovimentoTotais, page PageResponse) HistoricoResponse {
	items := make([]MovimentoResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, NewMovimentoResponse(m))
	}
	return HistoricoResponse{
		Items:         items,
		TotalEntradas: totais.TotalEntradas,
		TotalSaidas:   totais.TotalSaidas,
		Saldo:         totais.Saldo,
		Page:          page,
	}
}
