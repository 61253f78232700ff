package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCPFValid(t *testing.T) {
	assert.True(t, IsCPFValid("529.982.247-25"))
	assert.True(t, IsCPFValid("52998224725"))

	assert.False(t, IsCPFValid("529.982.247-26"))
	assert.False(t, IsCPFValid("111.111.111-11"))
	assert.False(t, IsCPFValid("123"))
	assert.False(t, IsCPFValid(""))
	assert.False(t, IsCPFValid("5299822472a"))
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", FormatCPF("52998224725"))
	assert.Equal(t, "529.982.247-25", FormatCPF("529.982.247-25"))
	assert.Equal(t, "123", FormatCPF("123"))
}
