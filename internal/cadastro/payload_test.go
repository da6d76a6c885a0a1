package cadastro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadIdaEVolta(t *testing.T) {
	casos := [][]LinhaBem{
		{},
		{{NumeroPatrimonial: "123.456789012-3", Localizacao: "A1"}},
		{
			{NumeroPatrimonial: "livre \"7\"", FormatoAntigo: true, Localizacao: "Sala Técnica"},
			{SemNumeracao: true, Localizacao: "Almoxarifado\ncentral"},
			{},
		},
	}

	for _, linhas := range casos {
		decodificado, err := DecodificarPayloadEstrito(CodificarPayload(linhas))
		require.NoError(t, err)
		assert.Equal(t, linhas, decodificado)
	}
}

func TestCodificarPayloadFormato(t *testing.T) {
	assert.Equal(t, "[]", CodificarPayload(nil))

	raw := CodificarPayload([]LinhaBem{{NumeroPatrimonial: "1", SemNumeracao: true, Localizacao: "B"}})
	assert.Equal(t, `[{"numero_patrimonial":"1","numero_formato_antigo":false,"sem_numeracao":true,"localizacao":"B"}]`, raw)
}

func TestDecodificarPayloadInvalido(t *testing.T) {
	entradas := []string{"", "   ", "null", "não é json", "{}", "42", `"texto"`, `[1,2]`, `[{"numero_patrimonial":5}]`, `[{"sem_numeracao":"sim"}]`}

	for _, raw := range entradas {
		t.Run(raw, func(t *testing.T) {
			linhas := DecodificarPayload(raw)
			assert.NotNil(t, linhas)
			assert.Empty(t, linhas)
		})
	}
}

func TestDecodificarPayloadEstritoErro(t *testing.T) {
	_, err := DecodificarPayloadEstrito("{}")
	assert.ErrorIs(t, err, ErrPayloadMalformado)

	linhas, err := DecodificarPayloadEstrito("null")
	require.NoError(t, err)
	assert.Empty(t, linhas)
}
