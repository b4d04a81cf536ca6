package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorlite/erp-api/internal/application/auth"
	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	pkgjwt "github.com/gestorlite/erp-api/pkg/jwt"
)

type usuarioRepoFake struct {
	usuarios map[string]*entity.Usuario // por email
}

func (f *usuarioRepoFake) Create(u *entity.Usuario) error {
	f.usuarios[u.Email] = u
	return nil
}

func (f *usuarioRepoFake) GetByEmail(email string) (*entity.Usuario, error) {
	u, ok := f.usuarios[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *usuarioRepoFake) Count() (int, error) {
	return len(f.usuarios), nil
}

const (
	testSecret = "segredo-de-teste"
	testEmail  = "admin@loja.com"
	testSenha  = "troque-me-123"
)

func novoUC(repo *usuarioRepoFake) *auth.UseCase {
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "erp-api-test",
	})
}

func comUsuario(t *testing.T, ativo bool) *usuarioRepoFake {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testSenha), bcrypt.MinCost)
	require.NoError(t, err)
	return &usuarioRepoFake{usuarios: map[string]*entity.Usuario{
		testEmail: {ID: "usr-1", Email: testEmail, SenhaHash: string(hash), Ativo: ativo},
	}}
}

func TestLogin_EmiteTokenComClaims(t *testing.T) {
	uc := novoUC(comUsuario(t, true))

	token, usuario, err := uc.Login(context.Background(), testEmail, testSenha)
	require.NoError(t, err)
	require.NotNil(t, usuario)
	assert.Equal(t, "usr-1", usuario.ID)

	uid, mail, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "usr-1", uid)
	assert.Equal(t, testEmail, mail)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc := novoUC(comUsuario(t, true))
	_, _, err := uc.Login(context.Background(), testEmail, "senha-errada")
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

func TestLogin_EmailDesconhecido(t *testing.T) {
	uc := novoUC(comUsuario(t, true))
	_, _, err := uc.Login(context.Background(), "ninguem@loja.com", testSenha)
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas,
		"email inexistente e senha errada devem ser indistinguíveis")
}

func TestLogin_UsuarioInativo(t *testing.T) {
	uc := novoUC(comUsuario(t, false))
	_, _, err := uc.Login(context.Background(), testEmail, testSenha)
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

func TestLogin_EntradaVazia(t *testing.T) {
	uc := novoUC(comUsuario(t, true))
	_, _, err := uc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestSeedAdmin_CriaQuandoTabelaVazia(t *testing.T) {
	repo := &usuarioRepoFake{usuarios: map[string]*entity.Usuario{}}
	uc := novoUC(repo)

	require.NoError(t, uc.SeedAdmin(context.Background(), testEmail, testSenha))
	require.Len(t, repo.usuarios, 1)

	criado := repo.usuarios[testEmail]
	assert.True(t, criado.Ativo)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(criado.SenhaHash), []byte(testSenha)),
		"a senha deve ser gravada como hash bcrypt")
}

func TestSeedAdmin_NaoDuplicaQuandoJaHaUsuario(t *testing.T) {
	repo := comUsuario(t, true)
	uc := novoUC(repo)

	require.NoError(t, uc.SeedAdmin(context.Background(), "outro@loja.com", "x"))
	assert.Len(t, repo.usuarios, 1, "seed não roda quando a tabela já tem usuário")
}
