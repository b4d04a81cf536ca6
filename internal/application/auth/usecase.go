package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
	"github.com/gestorlite/erp-api/pkg/jwt"
)

// JWTConfig parâmetros de emissão do token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autentica usuários e emite tokens JWT.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewUseCase constrói o caso de uso.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica email/senha (bcrypt) e devolve o token assinado.
func (uc *UseCase) Login(ctx context.Context, email, senha string) (string, *entity.Usuario, error) {
	if email == "" || senha == "" {
		return "", nil, domain.ErrEntradaInvalida
	}
	usuario, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if usuario == nil || !usuario.Ativo {
		return "", nil, domain.ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(senha)); err != nil {
		return "", nil, domain.ErrCredenciaisInvalidas
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, usuario, nil
}

// SeedAdmin cria o usuário administrador padrão quando a tabela está vazia
// (primeira subida do sistema). Senha inicial deve ser trocada em produção.
func (uc *UseCase) SeedAdmin(ctx context.Context, email, senha string) error {
	total, err := uc.usuarioRepo.Count()
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.usuarioRepo.Create(&entity.Usuario{
		ID:        uuid.New().String(),
		Email:     email,
		SenhaHash: string(hash),
		Ativo:     true,
		CreatedAt: time.Now(),
	})
}
