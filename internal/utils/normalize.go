package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizarTexto remove acentos, converte para minúsculas e colapsa espaços.
// Exemplo: "  Sala  Técnica " -> "sala tecnica"
func NormalizarTexto(texto string) string {
	if texto == "" {
		return texto
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalizado, _, _ := transform.String(t, texto)

	return strings.Join(strings.Fields(strings.ToLower(normalizado)), " ")
}

// ChaveNumeroPatrimonial reduz um número patrimonial à forma usada para detectar duplicidade.
// Números estruturados e antigos passam pela mesma normalização, sem espaços internos.
// Exemplo: "123.456789012-3" -> "123.456789012-3", " AB 12 " -> "ab12"
func ChaveNumeroPatrimonial(numero string) string {
	return strings.ReplaceAll(NormalizarTexto(numero), " ", "")
}

// DesnormalizarTexto procura, entre os valores válidos, aquele cuja forma normalizada coincide.
// Sublinhado e espaço se equivalem, então "Aquisição Direta" encontra "aquisicao_direta".
// Sem correspondência, devolve o texto recebido.
func DesnormalizarTexto(normalizado string, validos []string) string {
	chave := func(s string) string {
		return NormalizarTexto(strings.ReplaceAll(s, "_", " "))
	}
	procurado := chave(normalizado)
	for _, valor := range validos {
		if chave(valor) == procurado {
			return valor
		}
	}
	return normalizado
}
