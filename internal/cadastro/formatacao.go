package cadastro

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const maxDigitosNumeroPatrimonial = 13

var (
	padraoValorMonetario    = regexp.MustCompile(`^\d{1,3}(\.\d{3})*,\d{2}$`)
	padraoNumeroPatrimonial = regexp.MustCompile(PadraoNumeroPatrimonial)
)

// ErrValorMonetarioInvalido indica um valor fora do formato 0.000,00
var ErrValorMonetarioInvalido = errors.New("valor inválido. Use o formato 0,00 ou 0.000,00")

// SomenteDigitos remove tudo que não for dígito ASCII
func SomenteDigitos(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FormatarNumeroPatrimonial aplica a máscara DDD.DDDDDDDDD-D conforme a quantidade de dígitos.
// Exemplo: "1234" -> "123.4", "1234567890123" -> "123.456789012-3"
func FormatarNumeroPatrimonial(digitos string) string {
	if len(digitos) > maxDigitosNumeroPatrimonial {
		digitos = digitos[:maxDigitosNumeroPatrimonial]
	}

	switch {
	case len(digitos) <= 3:
		return digitos
	case len(digitos) <= 12:
		return digitos[:3] + "." + digitos[3:]
	default:
		return digitos[:3] + "." + digitos[3:12] + "-" + digitos[12:]
	}
}

// NumeroPatrimonialValido verifica se o número segue o padrão estruturado
func NumeroPatrimonialValido(numero string) bool {
	return padraoNumeroPatrimonial.MatchString(numero)
}

// FormatarValorMonetario trata os dois últimos dígitos como centavos e separa milhares com ponto.
// Exemplo: "" -> "0,00", "5" -> "0,05", "123456" -> "1.234,56"
func FormatarValorMonetario(digitos string) string {
	digitos = strings.TrimLeft(SomenteDigitos(digitos), "0")
	for len(digitos) < 3 {
		digitos = "0" + digitos
	}

	centavos := digitos[len(digitos)-2:]
	inteiros := digitos[:len(digitos)-2]

	var b strings.Builder
	for i, r := range inteiros {
		if i > 0 && (len(inteiros)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return b.String() + "," + centavos
}

// ValorMonetarioValido verifica o formato 0.000,00
func ValorMonetarioValido(valor string) bool {
	return padraoValorMonetario.MatchString(valor)
}

// MascararValorMonetario mantém um valor já formatado e reformata qualquer outro a partir dos seus dígitos
func MascararValorMonetario(valor string) string {
	valor = strings.TrimSpace(valor)
	if ValorMonetarioValido(valor) {
		return valor
	}
	return FormatarValorMonetario(SomenteDigitos(valor))
}

// CentavosDeValorMonetario converte "1.234,56" em 123456
func CentavosDeValorMonetario(valor string) (int64, error) {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return 0, ErrValorMonetarioInvalido
	}

	normalizado := strings.ReplaceAll(valor, ".", "")
	partes := strings.Split(normalizado, ",")
	if len(partes) > 2 || partes[0] == "" && (len(partes) == 1 || partes[1] == "") {
		return 0, ErrValorMonetarioInvalido
	}

	inteiros := partes[0]
	if inteiros == "" {
		inteiros = "0"
	}
	centavos := "00"
	if len(partes) == 2 {
		centavos = partes[1]
		switch len(centavos) {
		case 1:
			centavos += "0"
		case 2:
		default:
			return 0, ErrValorMonetarioInvalido
		}
	}

	if SomenteDigitos(inteiros) != inteiros || SomenteDigitos(centavos) != centavos {
		return 0, ErrValorMonetarioInvalido
	}

	total, err := strconv.ParseInt(inteiros+centavos, 10, 64)
	if err != nil {
		return 0, ErrValorMonetarioInvalido
	}
	return total, nil
}
