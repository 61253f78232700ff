package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGerarHoras(t *testing.T) {
	assert.Equal(t,
		[]string{"09:00", "09:30"},
		GerarHoras("09:00", "10:00", 30),
	)

	assert.Equal(t,
		[]string{"08:00", "09:00", "10:00", "11:00"},
		GerarHoras("08:00", "12:00", 60),
	)

	// O fim é exclusivo mesmo quando o passo não divide o intervalo.
	assert.Equal(t,
		[]string{"09:00", "09:45"},
		GerarHoras("09:00", "10:15", 45),
	)
}

func TestGerarHorasDegeneradas(t *testing.T) {
	assert.Empty(t, GerarHoras("10:00", "10:00", 30))
	assert.Empty(t, GerarHoras("11:00", "10:00", 30))
	assert.Empty(t, GerarHoras("09:00", "10:00", 0))
	assert.Empty(t, GerarHoras("09:00", "10:00", -15))
	assert.Empty(t, GerarHoras("9h", "10:00", 30))
	assert.Empty(t, GerarHoras("09:00", "meio-dia", 30))
}
