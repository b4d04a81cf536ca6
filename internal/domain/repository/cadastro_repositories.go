package repository

import "github.com/gestorlite/erp-api/internal/domain/entity"

// ClienteRepository define o porto de persistência de Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List(somenteAtivos bool, limit, offset int) ([]*entity.Cliente, error)
	Patch(id string, patch entity.ClientePatch) error
	Delete(id string) error
}

// FornecedorRepository define o porto de persistência de Fornecedor.
type FornecedorRepository interface {
	Create(fornecedor *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	GetByCNPJ(cnpj string) (*entity.Fornecedor, error)
	List(somenteAtivos bool, limit, offset int) ([]*entity.Fornecedor, error)
	Patch(id string, patch entity.FornecedorPatch) error
	Delete(id string) error
}

// FilialRepository define o porto de persistência de Filial.
type FilialRepository interface {
	Create(filial *entity.Filial) error
	GetByID(id string) (*entity.Filial, error)
	List(somenteAtivas bool) ([]*entity.Filial, error)
	Delete(id string) error
}

// UsuarioRepository define o porto de persistência de Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByEmail(email string) (*entity.Usuario, error)
	Count() (int, error)
}
