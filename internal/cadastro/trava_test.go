package cadastro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTravaEnvioBloqueiaRepeticao(t *testing.T) {
	trava := NovaTravaEnvio(time.Minute)

	assert.True(t, trava.Adquirir())
	assert.False(t, trava.Adquirir())
	assert.True(t, trava.Travada())

	trava.Liberar()
	assert.False(t, trava.Travada())
	assert.True(t, trava.Adquirir())
	trava.Liberar()
}

func TestTravaEnvioLiberaSozinha(t *testing.T) {
	trava := NovaTravaEnvio(20 * time.Millisecond)

	assert.True(t, trava.Adquirir())
	assert.Eventually(t, func() bool { return !trava.Travada() }, time.Second, 5*time.Millisecond)
	assert.True(t, trava.Adquirir())
	trava.Liberar()
}

func TestTravaEnvioExpiracaoAntigaNaoSoltaNovaAquisicao(t *testing.T) {
	trava := NovaTravaEnvio(time.Minute)

	assert.True(t, trava.Adquirir())
	geracaoAntiga := trava.geracao
	trava.Liberar()
	assert.True(t, trava.Adquirir())

	trava.expirar(geracaoAntiga)
	assert.True(t, trava.Travada())
	trava.Liberar()
}

func TestNovaTravaEnvioIntervaloPadrao(t *testing.T) {
	assert.Equal(t, IntervaloTravaEnvio, NovaTravaEnvio(0).intervalo)
}
