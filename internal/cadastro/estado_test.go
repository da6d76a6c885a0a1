package cadastro

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstadoCopiaIndependente(t *testing.T) {
	f := novoFormularioCompleto(t)
	f.AdicionarLinha().DigitarLocalizacao("Sala 1")

	estado := f.Estado()
	estado.Linhas[2].Campos[0].Valor = "alterado"
	estado.Multi.Linhas[0].Localizacao.Valor = "alterado"

	assert.Equal(t, "Notebook", f.Contexto().Campo("nome").Valor)
	assert.Equal(t, "Sala 1", f.Linhas()[0].Localizacao.Valor)
}

func TestEstadoConteudo(t *testing.T) {
	f := novoFormularioCompleto(t)
	v := f.AdicionarLinha()
	v.MarcarSemNumeracao(true)

	estado := f.Estado()

	assert.Equal(t, ModoUnico, estado.Modo)
	assert.Equal(t, "estruturado", estado.NumeracaoNativa)
	require.Len(t, estado.Multi.Linhas, 1)
	assert.Equal(t, "automatico", estado.Multi.Linhas[0].Numeracao)
	assert.Equal(t, f.Payload(), estado.MultiPayload)
	assert.Equal(t, "Selecione o modo de cadastro antes de preencher os campos.", estado.Linhas[0].Ajuda)

	raw, err := json.Marshal(estado)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"numeracao":"automatico"`)
}
