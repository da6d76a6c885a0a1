package cadastro

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrPayloadMalformado indica um payload que não é um array JSON de linhas
var ErrPayloadMalformado = errors.New("payload de múltiplos bens malformado")

// CodificarPayload serializa as linhas como array JSON, na ordem recebida
func CodificarPayload(linhas []LinhaBem) string {
	if linhas == nil {
		linhas = []LinhaBem{}
	}
	data, err := json.Marshal(linhas)
	if err != nil {
		// LinhaBem só tem strings e booleanos
		return "[]"
	}
	return string(data)
}

// DecodificarPayload lê o payload inicial. Qualquer falha resulta em lista vazia.
func DecodificarPayload(raw string) []LinhaBem {
	linhas, err := DecodificarPayloadEstrito(raw)
	if err != nil {
		return []LinhaBem{}
	}
	return linhas
}

// DecodificarPayloadEstrito lê o payload e informa ErrPayloadMalformado quando não é um array de linhas.
// Texto vazio e "null" valem como lista vazia.
func DecodificarPayloadEstrito(raw string) ([]LinhaBem, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []LinhaBem{}, nil
	}

	var linhas []LinhaBem
	if err := json.Unmarshal([]byte(raw), &linhas); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadMalformado, err)
	}
	if linhas == nil {
		linhas = []LinhaBem{}
	}
	return linhas, nil
}
