package utils

import (
	"net/url"
	"strings"
)

// MontarURL junta a base com o caminho e acrescenta os parâmetros de consulta.
// Base vazia ou inválida resulta em string vazia.
// Exemplo: ("http://app/", "/agenda/horarios_disponiveis/", {"data": "2024-05-01"})
// -> "http://app/agenda/horarios_disponiveis/?data=2024-05-01"
func MontarURL(base, caminho string, params url.Values) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}

	parsed, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}

	if caminho != "" {
		parsed.Path = strings.TrimRight(parsed.Path, "/") + "/" + strings.TrimLeft(caminho, "/")
	}
	if len(params) > 0 {
		parsed.RawQuery = params.Encode()
	}

	return parsed.String()
}
