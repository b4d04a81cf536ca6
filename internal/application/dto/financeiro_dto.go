package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain/entity"
)

// CreateContaRequest body para POST /api/financeiro/contas. Parcelas > 1
// divide o valor total em vencimentos mensais.
type CreateContaRequest struct {
	Tipo               string          `json:"tipo" validate:"required,oneof=PAGAR RECEBER"`
	Descricao          string          `json:"descricao" validate:"required"`
	ValorTotal         decimal.Decimal `json:"valor_total"`
	PrimeiroVencimento time.Time       `json:"primeiro_vencimento"`
	Parcelas           int             `json:"parcelas"`
	FornecedorID       string          `json:"fornecedor_id,omitempty"`
	ClienteID          string          `json:"cliente_id,omitempty"`
	ContaBancariaID    string          `json:"conta_bancaria_id,omitempty"`
}

// BaixarContaRequest body para POST /api/financeiro/contas/:id/baixa.
type BaixarContaRequest struct {
	ContaBancariaID string           `json:"conta_bancaria_id" validate:"required"`
	ValorPago       *decimal.Decimal `json:"valor_pago,omitempty"` // omitido = valor da parcela
	DataPagamento   *time.Time       `json:"data_pagamento,omitempty"`
}

// ContaResponse saída de uma conta financeira. Status devolve a visão
// calculada: PENDENTE vencida aparece como VENCIDO.
type ContaResponse struct {
	ID              string          `json:"id"`
	Tipo            string          `json:"tipo"`
	Descricao       string          `json:"descricao"`
	Valor           decimal.Decimal `json:"valor"`
	Vencimento      time.Time       `json:"vencimento"`
	ValorPago       decimal.Decimal `json:"valor_pago"`
	DataPagamento   *time.Time      `json:"data_pagamento,omitempty"`
	Status          string          `json:"status"`
	ParcelaNumero   int             `json:"parcela_numero"`
	ParcelaTotal    int             `json:"parcela_total"`
	FornecedorID    string          `json:"fornecedor_id,omitempty"`
	ClienteID       string          `json:"cliente_id,omitempty"`
	ContaBancariaID string          `json:"conta_bancaria_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewContaResponse converte a entidade na resposta HTTP, aplicando o status
// calculado na data de referência.
func NewContaResponse(c *entity.ContaFinanceira, ref time.Time) ContaResponse {
	return ContaResponse{
		ID:              c.ID,
		Tipo:            c.Tipo,
		Descricao:       c.Descricao,
		Valor:           c.Valor,
		Vencimento:      c.Vencimento,
		ValorPago:       c.ValorPago,
		DataPagamento:   c.DataPagamento,
		Status:          c.StatusCalculado(ref),
		ParcelaNumero:   c.ParcelaNumero,
		ParcelaTotal:    c.ParcelaTotal,
		FornecedorID:    c.FornecedorID,
		ClienteID:       c.ClienteID,
		ContaBancariaID: c.ContaBancariaID,
		CreatedAt:       c.CreatedAt,
	}
}

// ContaListResponse lista paginada de contas.
type ContaListResponse struct {
	Items []ContaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CreateContaBancariaRequest entrada para criar uma conta bancária.
type CreateContaBancariaRequest struct {
	Nome         string          `json:"nome" validate:"required"`
	Banco        string          `json:"banco"`
	Agencia      string          `json:"agencia"`
	Numero       string          `json:"numero"`
	SaldoInicial decimal.Decimal `json:"saldo_inicial"`
}

// ContaBancariaResponse saída de uma conta bancária.
type ContaBancariaResponse struct {
	ID        string          `json:"id"`
	Nome      string          `json:"nome"`
	Banco     string          `json:"banco"`
	Agencia   string          `json:"agencia"`
	Numero    string          `json:"numero"`
	Saldo     decimal.Decimal `json:"saldo"`
	Ativo     bool            `json:"ativo"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewContaBancariaResponse converte a entidade na resposta HTTP.
func NewContaBancariaResponse(c *entity.ContaBancaria) ContaBancariaResponse {
	return ContaBancariaResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Banco:     c.Banco,
		Agencia:   c.Agencia,
		Numero:    c.Numero,
		Saldo:     c.Saldo,
		Ativo:     c.Ativo,
		CreatedAt: c.CreatedAt,
	}
}
