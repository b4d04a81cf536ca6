package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorlite/erp-api/pkg/jwt"
)

const (
	secret = "segredo-de-teste"
	userID = "00000000-0000-0000-0000-000000000001"
	email  = "maria@loja.com"
	issuer = "erp-api-test"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(secret, userID, email, issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, mail, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, uid)
	assert.Equal(t, email, mail)
}

func TestParse_SecretErrado(t *testing.T) {
	token, err := jwt.Generate(secret, userID, email, issuer, 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("outro-segredo", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(secret, userID, email, issuer, -5)
	require.NoError(t, err)

	_, _, err = jwt.Parse(secret, token)
	assert.Error(t, err, "token com expiração no passado deve ser rejeitado")
}

func TestParse_TokenAdulterado(t *testing.T) {
	token, err := jwt.Generate(secret, userID, email, issuer, 60)
	require.NoError(t, err)

	adulterado := token[:len(token)-2] + "xx"
	_, _, err = jwt.Parse(secret, adulterado)
	assert.Error(t, err)
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := jwt.Generate("", userID, email, issuer, 60)
	assert.Error(t, err)
}

func TestParse_SecretVazio(t *testing.T) {
	_, _, err := jwt.Parse("", "qualquer-token")
	assert.Error(t, err)
}
