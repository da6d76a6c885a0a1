package cadastro

import (
	"slices"
	"strings"

	"github.com/prefeitura-rio/app-bens-fisicos/internal/utils"
)

// TipoCampo identifica o tipo de controle de um campo do formulário
type TipoCampo string

const (
	TipoTexto     TipoCampo = "text"
	TipoAreaTexto TipoCampo = "textarea"
	TipoSelecao   TipoCampo = "select"
	TipoData      TipoCampo = "date"
	TipoCaixa     TipoCampo = "checkbox"
	TipoRadio     TipoCampo = "radio"
	TipoOculto    TipoCampo = "hidden"
)

// Nomes dos campos do formulário hospedeiro que o controlador manipula
const (
	CampoNumeroPatrimonial = "numero_patrimonial"
	CampoFormatoAntigo     = "numero_formato_antigo"
	CampoSemNumeracao      = "sem_numeracao"
	CampoLocalizacao       = "localizacao"
	CampoValorUnitario     = "valor_unitario"
	CampoCadastroModo      = "cadastro_modo"
	CampoMultiPayload      = "multi_payload"
)

// rotuloPadrao é usado quando o campo não tem rótulo, nome nem id
const rotuloPadrao = "Campo obrigatório"

// Campo representa um controle do formulário e o estado que o controlador lê e escreve
type Campo struct {
	ID             string    `json:"id,omitempty"`
	Nome           string    `json:"nome,omitempty"`
	Tipo           TipoCampo `json:"tipo"`
	Valor          string    `json:"valor"`
	Marcado        bool      `json:"marcado,omitempty"`
	Desabilitado   bool      `json:"desabilitado,omitempty"`
	SomenteLeitura bool      `json:"somente_leitura,omitempty"`
	Obrigatorio    bool      `json:"obrigatorio,omitempty"`
	Padrao         string    `json:"padrao,omitempty"`
	Placeholder    string    `json:"placeholder,omitempty"`
	Erro           bool      `json:"erro,omitempty"`
	Opcoes         []string  `json:"opcoes,omitempty"`
}

// Marcavel indica se o campo é uma caixa de seleção ou um rádio
func (c *Campo) Marcavel() bool {
	return c.Tipo == TipoCaixa || c.Tipo == TipoRadio
}

// LinhaFormulario agrupa um rótulo e seus controles, como uma linha do admin
type LinhaFormulario struct {
	Nome        string   `json:"nome"`
	Rotulo      string   `json:"rotulo,omitempty"`
	Ajuda       string   `json:"ajuda,omitempty"`
	Obrigatoria bool     `json:"obrigatoria,omitempty"`
	Oculta      bool     `json:"oculta,omitempty"`
	Erro        bool     `json:"erro,omitempty"`
	Campos      []*Campo `json:"campos"`
}

// Banner é a área de mensagens de erro injetada no formulário
type Banner struct {
	Visivel   bool     `json:"visivel"`
	Mensagens []string `json:"mensagens,omitempty"`
	RolarAte  bool     `json:"rolar_ate,omitempty"`
}

// Exibir mostra as mensagens e pede rolagem até o banner; sem mensagens, oculta e limpa
func (b *Banner) Exibir(mensagens []string) {
	if len(mensagens) == 0 {
		b.Limpar()
		return
	}
	b.Visivel = true
	b.Mensagens = append([]string(nil), mensagens...)
	b.RolarAte = true
}

// Limpar oculta o banner
func (b *Banner) Limpar() {
	b.Visivel = false
	b.Mensagens = nil
	b.RolarAte = false
}

// Contexto reúne as referências a todos os elementos usados pelo controlador.
// É construído uma vez por formulário e passado a cada componente.
type Contexto struct {
	// Linhas do formulário hospedeiro, na ordem de exibição
	Linhas []*LinhaFormulario

	// Edicao indica a alteração de um registro existente (não há rádio de modo)
	Edicao bool

	// ForcarMulti é definido pelo servidor quando o registro precisa do modo múltiplo
	ForcarMulti bool

	// PayloadInicial é o JSON embutido pelo servidor para hidratar as linhas
	PayloadInicial string

	NumeroPatrimonial *Campo
	FormatoAntigo     *Campo
	SemNumeracao      *Campo
	Localizacao       *Campo
	ValorUnitario     *Campo
	RadiosModo        []*Campo

	// Elementos injetados pelo controlador
	ErrosBase     *Banner
	ErrosMulti    *Banner
	Multi         *ContainerMulti
	PayloadOculto *Campo
	ModoOculto    *Campo
}

// ContainerMulti é o bloco com a lista de linhas do modo múltiplo
type ContainerMulti struct {
	Visivel bool
	Linhas  []*LinhaView
}

// NovoContexto resolve as referências tipadas a partir das linhas do formulário hospedeiro
func NovoContexto(linhas []*LinhaFormulario, edicao, forcarMulti bool, payloadInicial string) *Contexto {
	ctx := &Contexto{
		Linhas:         linhas,
		Edicao:         edicao,
		ForcarMulti:    forcarMulti,
		PayloadInicial: payloadInicial,
		ErrosBase:      &Banner{},
		ErrosMulti:     &Banner{},
		Multi:          &ContainerMulti{},
		PayloadOculto:  &Campo{ID: "id_" + CampoMultiPayload, Nome: CampoMultiPayload, Tipo: TipoOculto, Valor: "[]"},
		ModoOculto:     &Campo{Nome: CampoCadastroModo, Tipo: TipoOculto},
	}

	ctx.NumeroPatrimonial = ctx.Campo(CampoNumeroPatrimonial)
	ctx.FormatoAntigo = ctx.Campo(CampoFormatoAntigo)
	ctx.SemNumeracao = ctx.Campo(CampoSemNumeracao)
	ctx.Localizacao = ctx.Campo(CampoLocalizacao)
	ctx.ValorUnitario = ctx.Campo(CampoValorUnitario)
	ctx.RadiosModo = ctx.Grupo(CampoCadastroModo)

	return ctx
}

// Campo retorna o primeiro campo do formulário hospedeiro com o nome informado
func (ctx *Contexto) Campo(nome string) *Campo {
	for _, linha := range ctx.Linhas {
		for _, campo := range linha.Campos {
			if campo.Nome == nome {
				return campo
			}
		}
	}
	return nil
}

// Grupo retorna todos os campos que compartilham o nome (rádios, caixas)
func (ctx *Contexto) Grupo(nome string) []*Campo {
	var grupo []*Campo
	for _, linha := range ctx.Linhas {
		for _, campo := range linha.Campos {
			if campo.Nome == nome {
				grupo = append(grupo, campo)
			}
		}
	}
	return grupo
}

// LinhaDe retorna a linha que contém o campo
func (ctx *Contexto) LinhaDe(campo *Campo) *LinhaFormulario {
	for _, linha := range ctx.Linhas {
		for _, c := range linha.Campos {
			if c == campo {
				return linha
			}
		}
	}
	return nil
}

// RotuloDe retorna o texto do rótulo da linha do campo, sem dois-pontos nem marcação.
// Sem rótulo, usa o nome, depois o id do campo.
func (ctx *Contexto) RotuloDe(campo *Campo) string {
	if linha := ctx.LinhaDe(campo); linha != nil && linha.Rotulo != "" {
		rotulo := strings.TrimSpace(strings.Replace(utils.TextoSemMarcacao(linha.Rotulo), ":", "", 1))
		if rotulo != "" {
			return rotulo
		}
	}
	if campo.Nome != "" {
		return campo.Nome
	}
	if campo.ID != "" {
		return campo.ID
	}
	return rotuloPadrao
}

// linhasUnico são as linhas que só valem no modo de cadastro único
func (ctx *Contexto) linhasUnico() []*LinhaFormulario {
	var linhas []*LinhaFormulario
	for _, campo := range []*Campo{ctx.NumeroPatrimonial, ctx.FormatoAntigo, ctx.SemNumeracao, ctx.Localizacao} {
		if campo == nil {
			continue
		}
		if linha := ctx.LinhaDe(campo); linha != nil && !slices.Contains(linhas, linha) {
			linhas = append(linhas, linha)
		}
	}
	return linhas
}
