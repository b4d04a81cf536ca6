package domain

import "errors"

// Erros de domínio (sem dependências externas). A camada HTTP mapeia cada
// sentinela para o status code correspondente.
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrEstoqueInsuficiente  = errors.New("estoque insuficiente")
	ErrContaJaPaga          = errors.New("conta já baixada")
	ErrNotaJaProcessada     = errors.New("nota fiscal já processada")
	ErrXMLInvalido          = errors.New("xml da nota fiscal inválido")
	ErrCNPJInvalido         = errors.New("cnpj inválido")
)
