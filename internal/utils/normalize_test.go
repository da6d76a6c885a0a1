package utils

import "testing"

func TestNormalizarTexto(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Sala Técnica", "sala tecnica"},
		{"  Almoxarifado   Central ", "almoxarifado central"},
		{"Transferência", "transferencia"},
		{"AQUISIÇÃO", "aquisicao"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizarTexto(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizarTexto(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestChaveNumeroPatrimonial(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123.456789012-3", "123.456789012-3"},
		{" AB 12 ", "ab12"},
		{"Sala 3 B", "sala3b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ChaveNumeroPatrimonial(tt.input)
			if result != tt.expected {
				t.Errorf("ChaveNumeroPatrimonial(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDesnormalizarTexto(t *testing.T) {
	validos := []string{"repasse_de_verba", "aquisicao_direta", "transferencia"}

	if got := DesnormalizarTexto("TRANSFERÊNCIA", validos); got != "transferencia" {
		t.Errorf("DesnormalizarTexto() = %q, want %q", got, "transferencia")
	}
	if got := DesnormalizarTexto("Repasse de Verba", validos); got != "repasse_de_verba" {
		t.Errorf("DesnormalizarTexto() com espaços = %q, want %q", got, "repasse_de_verba")
	}
	if got := DesnormalizarTexto("doacao", validos); got != "doacao" {
		t.Errorf("DesnormalizarTexto() sem correspondência = %q, want %q", got, "doacao")
	}
}
