package cadastro

import "strings"

// LinhaView é a linha editável do modo múltiplo ligada a um LinhaBem do modelo.
// Toda alteração é escrita de volta no modelo.
type LinhaView struct {
	Indice        int    `json:"indice"`
	Numero        *Campo `json:"numero_patrimonial"`
	FormatoAntigo *Campo `json:"numero_formato_antigo"`
	SemNumeracao  *Campo `json:"sem_numeracao"`
	Localizacao   *Campo `json:"localizacao"`

	modelo      *LinhaBem
	controlador *ControladorNumeracao
	aoAlterar   func()
}

func novaLinhaView(indice int, modelo *LinhaBem, aoAlterar func()) *LinhaView {
	v := &LinhaView{
		Indice:        indice,
		Numero:        &Campo{Tipo: TipoTexto, Valor: modelo.NumeroPatrimonial, Placeholder: PlaceholderEstruturado},
		FormatoAntigo: &Campo{Tipo: TipoCaixa, Marcado: modelo.FormatoAntigo},
		SemNumeracao:  &Campo{Tipo: TipoCaixa, Marcado: modelo.SemNumeracao},
		Localizacao:   &Campo{Tipo: TipoTexto, Valor: modelo.Localizacao},
		modelo:        modelo,
		aoAlterar:     aoAlterar,
	}
	v.controlador = NovoControladorNumeracao(v.Numero, v.FormatoAntigo, v.SemNumeracao, false, v.sincronizar)
	v.controlador.Atualizar()
	return v
}

// ModoNumeracao retorna o modo ativo do número patrimonial da linha
func (v *LinhaView) ModoNumeracao() ModoNumeracao {
	return v.controlador.Modo()
}

// Linha retorna o registro atual da linha
func (v *LinhaView) Linha() LinhaBem {
	return *v.modelo
}

// DigitarNumero recebe a digitação no número patrimonial
func (v *LinhaView) DigitarNumero(texto string) {
	v.controlador.Digitar(texto)
}

// DigitarLocalizacao recebe a digitação na localização
func (v *LinhaView) DigitarLocalizacao(texto string) {
	v.Localizacao.Valor = texto
	v.sincronizar()
}

// MarcarFormatoAntigo altera a marcação "formato antigo" da linha
func (v *LinhaView) MarcarFormatoAntigo(marcado bool) {
	v.controlador.MarcarFormatoAntigo(marcado)
}

// MarcarSemNumeracao altera a marcação "sem numeração" da linha
func (v *LinhaView) MarcarSemNumeracao(marcado bool) {
	v.controlador.MarcarSemNumeracao(marcado)
}

func (v *LinhaView) sincronizar() {
	v.modelo.NumeroPatrimonial = strings.TrimSpace(v.Numero.Valor)
	v.modelo.FormatoAntigo = v.FormatoAntigo.Marcado
	v.modelo.SemNumeracao = v.SemNumeracao.Marcado
	v.modelo.Localizacao = strings.TrimSpace(v.Localizacao.Valor)
	if v.aoAlterar != nil {
		v.aoAlterar()
	}
}
