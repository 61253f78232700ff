package perfil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Admin, Parse("admin"))
	assert.Equal(t, Gerente, Parse("gerente"))
	assert.Equal(t, Atendente, Parse("atendente"))
	assert.Equal(t, Atendente, Parse("funcionario"))
	assert.False(t, Parse("root").Valido())
	assert.False(t, Parse("").Valido())
}

func TestPermiteHierarquia(t *testing.T) {
	assert.True(t, Admin.Permite(Atendente))
	assert.True(t, Admin.Permite(Gerente))
	assert.True(t, Admin.Permite(Admin))

	assert.True(t, Gerente.Permite(Atendente))
	assert.True(t, Gerente.Permite(Gerente))
	assert.False(t, Gerente.Permite(Admin))

	assert.True(t, Atendente.Permite(Atendente))
	assert.False(t, Atendente.Permite(Gerente))
	assert.False(t, Atendente.Permite(Admin))
}

func TestPermitePerfilInvalido(t *testing.T) {
	assert.False(t, Perfil("").Permite(Atendente))
	assert.False(t, Admin.Permite(Perfil("qualquer")))
}
