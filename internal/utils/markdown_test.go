package utils

import (
	"testing"
)

func TestTextoSemMarcacao(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "texto vazio",
			input:    "",
			expected: "",
		},
		{
			name:     "somente espaços",
			input:    "   ",
			expected: "",
		},
		{
			name:     "rótulo simples",
			input:    "Nome do bem:",
			expected: "Nome do bem:",
		},
		{
			name:     "negrito",
			input:    "Selecione o modo **antes** de preencher",
			expected: "Selecione o modo antes de preencher",
		},
		{
			name:     "itálico",
			input:    "Valor *unitário*:",
			expected: "Valor unitário:",
		},
		{
			name:     "link",
			input:    "Veja a [agenda](https://example.com) antes",
			expected: "Veja a agenda antes",
		},
		{
			name:     "asterisco escapado",
			input:    "Campo \\*opcional\\*",
			expected: "Campo *opcional*",
		},
		{
			name:     "código inline",
			input:    "Use `000.000000000-0`",
			expected: "Use 000.000000000-0",
		},
		{
			name:     "parágrafos viram uma linha",
			input:    "Primeira parte.\n\nSegunda parte.",
			expected: "Primeira parte. Segunda parte.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TextoSemMarcacao(tt.input)
			if result != tt.expected {
				t.Errorf("TextoSemMarcacao(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTextosSemMarcacao(t *testing.T) {
	if TextosSemMarcacao(nil) != nil {
		t.Error("TextosSemMarcacao(nil) deveria retornar nil")
	}

	result := TextosSemMarcacao([]string{"**Status**", "Origem:"})
	expected := []string{"Status", "Origem:"}

	if len(result) != len(expected) {
		t.Fatalf("TextosSemMarcacao() length = %d, want %d", len(result), len(expected))
	}
	for i := range result {
		if result[i] != expected[i] {
			t.Errorf("TextosSemMarcacao()[%d] = %q, want %q", i, result[i], expected[i])
		}
	}
}

func BenchmarkTextoSemMarcacao(b *testing.B) {
	input := "Selecione o modo de cadastro **antes** de preencher os campos. Veja [o manual](http://example.com)."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		TextoSemMarcacao(input)
	}
}
