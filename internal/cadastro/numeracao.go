package cadastro

// ModoNumeracao é o modo de exibição/validação do campo de número patrimonial
type ModoNumeracao int

const (
	// NumeracaoEstruturada exige o padrão DDD.DDDDDDDDD-D
	NumeracaoEstruturada ModoNumeracao = iota
	// NumeracaoAntiga aceita texto livre (formato antigo)
	NumeracaoAntiga
	// NumeracaoAutomatica deixa o campo vazio; o número será gerado depois
	NumeracaoAutomatica
)

const (
	PadraoNumeroPatrimonial = `^\d{3}\.\d{9}-\d$`

	PlaceholderEstruturado = "000.000000000-0"
	PlaceholderAntigo      = "Valor livre (formato antigo)"
	PlaceholderAutomatico  = "Gerado automaticamente"
)

func (m ModoNumeracao) String() string {
	switch m {
	case NumeracaoAntiga:
		return "antigo"
	case NumeracaoAutomatica:
		return "automatico"
	default:
		return "estruturado"
	}
}

// ResolverModoNumeracao deriva o modo a partir das duas marcações.
// "Sem numeração" prevalece sobre "formato antigo".
func ResolverModoNumeracao(formatoAntigo, semNumeracao bool) ModoNumeracao {
	switch {
	case semNumeracao:
		return NumeracaoAutomatica
	case formatoAntigo:
		return NumeracaoAntiga
	default:
		return NumeracaoEstruturada
	}
}

// ControladorNumeracao alterna um campo de número patrimonial entre os três modos.
// Há uma instância para o campo nativo e uma para cada linha do modo múltiplo.
type ControladorNumeracao struct {
	numero        *Campo
	formatoAntigo *Campo
	semNumeracao  *Campo

	// suprimirAutomatico impede o modo automático (edição de um bem existente)
	suprimirAutomatico bool

	aoAlterar func()
}

// NovoControladorNumeracao liga o controlador aos campos. semNumeracao e aoAlterar podem ser nil.
func NovoControladorNumeracao(numero, formatoAntigo, semNumeracao *Campo, suprimirAutomatico bool, aoAlterar func()) *ControladorNumeracao {
	return &ControladorNumeracao{
		numero:             numero,
		formatoAntigo:      formatoAntigo,
		semNumeracao:       semNumeracao,
		suprimirAutomatico: suprimirAutomatico,
		aoAlterar:          aoAlterar,
	}
}

func (c *ControladorNumeracao) semNumeracaoAtivo() bool {
	return c.semNumeracao != nil && c.semNumeracao.Marcado && !c.suprimirAutomatico
}

// Modo retorna o modo efetivo, já considerando a supressão do modo automático
func (c *ControladorNumeracao) Modo() ModoNumeracao {
	return ResolverModoNumeracao(c.formatoAntigo.Marcado, c.semNumeracaoAtivo())
}

// Atualizar reaplica a regra de transição sobre o estado atual dos campos
func (c *ControladorNumeracao) Atualizar() {
	if c.semNumeracaoAtivo() {
		c.numero.Valor = ""
		c.numero.SomenteLeitura = true
		c.numero.Padrao = ""
		c.numero.Placeholder = PlaceholderAutomatico
		c.formatoAntigo.Desabilitado = true
		c.formatoAntigo.Marcado = false
		c.notificar()
		return
	}

	c.numero.SomenteLeitura = false
	c.formatoAntigo.Desabilitado = false

	if c.formatoAntigo.Marcado {
		c.numero.Padrao = ""
		c.numero.Placeholder = PlaceholderAntigo
	} else {
		c.numero.Padrao = PadraoNumeroPatrimonial
		c.numero.Valor = FormatarNumeroPatrimonial(SomenteDigitos(c.numero.Valor))
		c.numero.Placeholder = PlaceholderEstruturado
	}
	c.notificar()
}

// Digitar recebe o texto digitado no campo. Campo somente leitura ignora a digitação.
func (c *ControladorNumeracao) Digitar(texto string) {
	if c.numero.SomenteLeitura {
		return
	}
	c.numero.Valor = texto
	c.Atualizar()
}

// MarcarFormatoAntigo altera a marcação "formato antigo"; ignorada se desabilitada
func (c *ControladorNumeracao) MarcarFormatoAntigo(marcado bool) {
	if c.formatoAntigo.Desabilitado {
		return
	}
	c.formatoAntigo.Marcado = marcado
	c.Atualizar()
}

// MarcarSemNumeracao altera a marcação "sem numeração"
func (c *ControladorNumeracao) MarcarSemNumeracao(marcado bool) {
	if c.semNumeracao == nil || c.semNumeracao.Desabilitado {
		return
	}
	c.semNumeracao.Marcado = marcado
	c.Atualizar()
}

func (c *ControladorNumeracao) notificar() {
	if c.aoAlterar != nil {
		c.aoAlterar()
	}
}
