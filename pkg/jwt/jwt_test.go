package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	token, err := Generate("secreto", PortalClient, "beneficios-api", 5)
	require.NoError(t, err)

	portal, err := Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, PortalClient, portal)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secreto", PortalAdmin, "beneficios-api", 5)
	require.NoError(t, err)

	_, err = Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := Generate("secreto", PortalAdmin, "beneficios-api", -1)
	require.NoError(t, err)

	_, err = Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_Errores(t *testing.T) {
	_, err := Generate("", PortalAdmin, "x", 5)
	assert.Error(t, err)

	_, err = Generate("secreto", "bodega", "x", 5)
	assert.Error(t, err)
}
