package entity

import "time"

// Fornecedor representa um fornecedor. PrazoPagamento (dias) alimenta o
// vencimento das contas a pagar geradas pela entrada de notas fiscais.
type Fornecedor struct {
	ID             string
	Nome           string
	CNPJ           string
	Email          string
	Telefone       string
	Endereco       string
	Cidade         string
	UF             string
	CEP            string
	Contato        string
	PrazoPagamento int // dias; 0 = à vista
	Ativo          bool
	CreatedAt      time.Time
}

// FornecedorPatch enumera os campos mutáveis por atualização parcial.
type FornecedorPatch struct {
	Nome           *string
	CNPJ           *string
	Email          *string
	Telefone       *string
	Endereco       *string
	Cidade         *string
	UF             *string
	CEP            *string
	Contato        *string
	PrazoPagamento *int
	Ativo          *bool
}
