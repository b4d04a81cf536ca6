package dto

import (
	"time"

	"github.com/gestorlite/erp-api/internal/domain/entity"
)

// CreateClienteRequest entrada para criar um cliente.
type CreateClienteRequest struct {
	Nome        string `json:"nome" validate:"required,min=1,max=200"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	CpfCnpj     string `json:"cpf_cnpj"`
	Endereco    string `json:"endereco"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
	CEP         string `json:"cep"`
	Observacoes string `json:"observacoes"`
}

// UpdateClienteRequest entrada para atualização parcial de cliente.
type UpdateClienteRequest struct {
	Nome        *string `json:"nome"`
	Email       *string `json:"email"`
	Telefone    *string `json:"telefone"`
	CpfCnpj     *string `json:"cpf_cnpj"`
	Endereco    *string `json:"endereco"`
	Cidade      *string `json:"cidade"`
	UF          *string `json:"uf"`
	CEP         *string `json:"cep"`
	Observacoes *string `json:"observacoes"`
	Ativo       *bool   `json:"ativo"`
}

// Patch converte o request no patch de domínio.
func (r UpdateClienteRequest) Patch() entity.ClientePatch {
	return entity.ClientePatch{
		Nome:        r.Nome,
		Email:       r.Email,
		Telefone:    r.Telefone,
		CpfCnpj:     r.CpfCnpj,
		Endereco:    r.Endereco,
		Cidade:      r.Cidade,
		UF:          r.UF,
		CEP:         r.CEP,
		Observacoes: r.Observacoes,
		Ativo:       r.Ativo,
	}
}

// ClienteResponse saída de um cliente.
type ClienteResponse struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	Telefone    string    `json:"telefone"`
	CpfCnpj     string    `json:"cpf_cnpj"`
	Endereco    string    `json:"endereco"`
	Cidade      string    `json:"cidade"`
	UF          string    `json:"uf"`
	CEP         string    `json:"cep"`
	Observacoes string    `json:"observacoes"`
	Ativo       bool      `json:"ativo"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewClienteResponse converte a entidade na resposta HTTP.
func NewClienteResponse(c *entity.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:          c.ID,
		Nome:        c.Nome,
		Email:       c.Email,
		Telefone:    c.Telefone,
		CpfCnpj:     c.CpfCnpj,
		Endereco:    c.Endereco,
		Cidade:      c.Cidade,
		UF:          c.UF,
		CEP:         c.CEP,
		Observacoes: c.Observacoes,
		Ativo:       c.Ativo,
		CreatedAt:   c.CreatedAt,
	}
}

// CreateFornecedorRequest entrada para criar um fornecedor.
type CreateFornecedorRequest struct {
	Nome           string `json:"nome" validate:"required,min=1,max=200"`
	CNPJ           string `json:"cnpj"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	Endereco       string `json:"endereco"`
	Cidade         string `json:"cidade"`
	UF             string `json:"uf"`
	CEP            string `json:"cep"`
	Contato        string `json:"contato"`
	PrazoPagamento int    `json:"prazo_pagamento"`
}

// UpdateFornecedorRequest entrada para atualização parcial de fornecedor.
type UpdateFornecedorRequest struct {
	Nome           *string `json:"nome"`
	CNPJ           *string `json:"cnpj"`
	Email          *string `json:"email"`
	Telefone       *string `json:"telefone"`
	Endereco       *string `json:"endereco"`
	Cidade         *string `json:"cidade"`
	UF             *string `json:"uf"`
	CEP            *string `json:"cep"`
	Contato        *string `json:"contato"`
	PrazoPagamento *int    `json:"prazo_pagamento"`
	Ativo          *bool   `json:"ativo"`
}

// Patch converte o request no patch de domínio.
func (r UpdateFornecedorRequest) Patch() entity.FornecedorPatch {
	return entity.FornecedorPatch{
		Nome:           r.Nome,
		CNPJ:           r.CNPJ,
		Email:          r.Email,
		Telefone:       r.Telefone,
		Endereco:       r.Endereco,
		Cidade:         r.Cidade,
		UF:             r.UF,
		CEP:            r.CEP,
		Contato:        r.Contato,
		PrazoPagamento: r.PrazoPagamento,
		Ativo:          r.Ativo,
	}
}

// FornecedorResponse saída de um fornecedor.
type FornecedorResponse struct {
	ID             string    `json:"id"`
	Nome           string    `json:"nome"`
	CNPJ           string    `json:"cnpj"`
	Email          string    `json:"email"`
	Telefone       string    `json:"telefone"`
	Endereco       string    `json:"endereco"`
	Cidade         string    `json:"cidade"`
	UF             string    `json:"uf"`
	CEP            string    `json:"cep"`
	Contato        string    `json:"contato"`
	PrazoPagamento int       `json:"prazo_pagamento"`
	Ativo          bool      `json:"ativo"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewFornecedorResponse converte a entidade na resposta HTTP.
func NewFornecedorResponse(f *entity.Fornecedor) FornecedorResponse {
	return FornecedorResponse{
		ID:             f.ID,
		Nome:           f.Nome,
		CNPJ:           f.CNPJ,
		Email:          f.Email,
		Telefone:       f.Telefone,
		Endereco:       f.Endereco,
		Cidade:         f.Cidade,
		UF:             f.UF,
		CEP:            f.CEP,
		Contato:        f.Contato,
		PrazoPagamento: f.PrazoPagamento,
		Ativo:          f.Ativo,
		CreatedAt:      f.CreatedAt,
	}
}

// CreateFilialRequest entrada para criar uma filial.
type CreateFilialRequest struct {
	Nome   string `json:"nome" validate:"required"`
	CNPJ   string `json:"cnpj"`
	UF     string `json:"uf" validate:"required"`
	Cidade string `json:"cidade"`
}

// FilialResponse saída de uma filial.
type FilialResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	UF        string    `json:"uf"`
	Cidade    string    `json:"cidade"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFilialResponse converte a entidade na resposta HTTP.
func NewFilialResponse(f *entity.Filial) FilialResponse {
	return FilialResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		CNPJ:      f.CNPJ,
		UF:        f.UF,
		Cidade:    f.Cidade,
		Ativo:     f.Ativo,
		CreatedAt: f.CreatedAt,
	}
}
