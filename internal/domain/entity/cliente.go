package entity

import "time"

// Cliente representa um cliente da empresa.
type Cliente struct {
	ID          string
	Nome        string
	Email       string
	Telefone    string
	CpfCnpj     string
	Endereco    string
	Cidade      string
	UF          string
	CEP         string
	Observacoes string
	Ativo       bool
	CreatedAt   time.Time
}

// ClientePatch enumera os campos mutáveis por atualização parcial.
type ClientePatch struct {
	Nome        *string
	Email       *string
	Telefone    *string
	CpfCnpj     *string
	Endereco    *string
	Cidade      *string
	UF          *string
	CEP         *string
	Observacoes *string
	Ativo       *bool
}
