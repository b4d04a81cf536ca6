package entity

import "time"

// Filial representa uma inscrição estadual/filial operacional com estoque
// próprio. Substitui a lista de inscrições embutida no código: novas filiais
// são cadastradas sem redeploy.
type Filial struct {
	ID        string
	Nome      string
	CNPJ      string
	UF        string
	Cidade    string
	Ativo     bool
	CreatedAt time.Time
}
