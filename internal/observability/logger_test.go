package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseNivel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseNivel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseNivel(" warn "))
	assert.Equal(t, zapcore.InfoLevel, parseNivel(""))
	assert.Equal(t, zapcore.InfoLevel, parseNivel("verboso"))
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	anterior := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(anterior) })

	Logger().Info("formulário aberto", zap.String("sessao", "abc"))

	entradas := logs.FilterMessage("formulário aberto").All()
	if assert.Len(t, entradas, 1) {
		assert.Equal(t, "abc", entradas[0].ContextMap()["sessao"])
	}
}
