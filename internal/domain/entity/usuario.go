package entity

import "time"

// Usuario representa um usuário do sistema (login por email).
type Usuario struct {
	ID        string
	Email     string
	SenhaHash string // bcrypt
	Ativo     bool
	CreatedAt time.Time
}
