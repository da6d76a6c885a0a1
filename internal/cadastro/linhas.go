package cadastro

import "errors"

// ErrLinhaInexistente indica um índice fora da lista de linhas
var ErrLinhaInexistente = errors.New("linha inexistente")

// LinhaBem é um registro do modo múltiplo; espelha os campos do cadastro único
type LinhaBem struct {
	NumeroPatrimonial string `json:"numero_patrimonial"`
	FormatoAntigo     bool   `json:"numero_formato_antigo"`
	SemNumeracao      bool   `json:"sem_numeracao"`
	Localizacao       string `json:"localizacao"`
}

// ModoNumeracao deriva o modo de exibição da linha
func (l LinhaBem) ModoNumeracao() ModoNumeracao {
	return ResolverModoNumeracao(l.FormatoAntigo, l.SemNumeracao)
}

// ModeloLinhas guarda as linhas do modo múltiplo na ordem de inserção
type ModeloLinhas struct {
	linhas []*LinhaBem
}

// NovoModeloLinhas cria um modelo vazio
func NovoModeloLinhas() *ModeloLinhas {
	return &ModeloLinhas{}
}

// Adicionar insere a linha no fim e devolve o registro mantido pelo modelo
func (m *ModeloLinhas) Adicionar(linha LinhaBem) *LinhaBem {
	registro := &linha
	m.linhas = append(m.linhas, registro)
	return registro
}

// Remover exclui a linha na posição (base zero)
func (m *ModeloLinhas) Remover(posicao int) error {
	if posicao < 0 || posicao >= len(m.linhas) {
		return ErrLinhaInexistente
	}
	m.linhas = append(m.linhas[:posicao], m.linhas[posicao+1:]...)
	return nil
}

// Limpar remove todas as linhas
func (m *ModeloLinhas) Limpar() {
	m.linhas = nil
}

// Len retorna a quantidade de linhas
func (m *ModeloLinhas) Len() int {
	return len(m.linhas)
}

// Linhas retorna uma cópia das linhas
func (m *ModeloLinhas) Linhas() []LinhaBem {
	copia := make([]LinhaBem, len(m.linhas))
	for i, l := range m.linhas {
		copia[i] = *l
	}
	return copia
}
