package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse token de acesso e identificação do usuário.
type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Email string `json:"email"`
}
