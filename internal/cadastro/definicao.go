package cadastro

import "strings"

// Origens aceitas para um bem patrimonial
const (
	OrigemRepasse       = "repasse_de_verba"
	OrigemAquisicao     = "aquisicao_direta"
	OrigemTransferencia = "transferencia"
	OrigemMovimentacao  = "movimentacao"
)

// StatusAguardandoAprovacao é o status de todo bem recém cadastrado
const StatusAguardandoAprovacao = "aguardando_aprovacao"

// OpcoesDefinicao parametriza o formulário de bem patrimonial
type OpcoesDefinicao struct {
	Edicao       bool
	CadastroModo string
	Valores      map[string]string
}

type campoDefinicao struct {
	nome        string
	rotulo      string
	tipo        TipoCampo
	obrigatoria bool
	opcoes      []string
	ajuda       string
}

var camposBemPatrimonial = []campoDefinicao{
	{nome: "status", rotulo: "Status", tipo: TipoSelecao, opcoes: []string{StatusAguardandoAprovacao, "aprovado", "nao_aprovado", "bloqueado"}},
	{nome: "nome", rotulo: "Nome do bem:", tipo: TipoTexto, obrigatoria: true},
	{nome: "descricao", rotulo: "Descrição:", tipo: TipoAreaTexto, obrigatoria: true},
	{nome: "quantidade", rotulo: "Quantidade:", tipo: TipoTexto, obrigatoria: true},
	{nome: CampoValorUnitario, rotulo: "Valor unitário:", tipo: TipoTexto, obrigatoria: true},
	{nome: "marca", rotulo: "Marca:", tipo: TipoTexto, obrigatoria: true},
	{nome: "modelo", rotulo: "Modelo:", tipo: TipoTexto, obrigatoria: true},
	{nome: "data_compra_entrega", rotulo: "Data da compra/entrega:", tipo: TipoData, obrigatoria: true},
	{nome: "origem", rotulo: "Origem:", tipo: TipoSelecao, obrigatoria: true, opcoes: []string{OrigemRepasse, OrigemAquisicao, OrigemTransferencia, OrigemMovimentacao}},
	{nome: "numero_processo", rotulo: "Número do processo de incorporação/transferência:", tipo: TipoTexto, obrigatoria: true},
	{nome: "autorizacao_no_doc_em", rotulo: "Autorização no DOC em:", tipo: TipoData},
	{nome: "numero_nibpm", rotulo: "Número NIBPM:", tipo: TipoTexto},
	{nome: "numero_cimbpm", rotulo: "Número CIMBPM:", tipo: TipoTexto},
	{nome: CampoNumeroPatrimonial, rotulo: "Número Patrimonial:", tipo: TipoTexto},
	{nome: CampoFormatoAntigo, rotulo: "Formato antigo", tipo: TipoCaixa},
	{nome: CampoSemNumeracao, rotulo: "Sem numeração", tipo: TipoCaixa},
	{nome: CampoLocalizacao, rotulo: "Localização:", tipo: TipoTexto},
	{nome: "numero_serie", rotulo: "Número de série:", tipo: TipoTexto},
}

const ajudaCadastroModo = "Selecione o modo de cadastro **antes** de preencher os campos."

// DefinicaoBemPatrimonial monta as linhas do formulário de cadastro de bem patrimonial.
// Na criação há o rádio de modo; na edição ele não existe e "sem numeração" fica desabilitado.
func DefinicaoBemPatrimonial(opcoes OpcoesDefinicao) []*LinhaFormulario {
	var linhas []*LinhaFormulario

	if !opcoes.Edicao {
		modo := ParseModo(opcoes.CadastroModo)
		linhas = append(linhas, &LinhaFormulario{
			Nome:   "field-" + CampoCadastroModo,
			Rotulo: "Cadastrar:",
			Ajuda:  ajudaCadastroModo,
			Campos: []*Campo{
				{ID: "id_cadastro_modo_0", Nome: CampoCadastroModo, Tipo: TipoRadio, Valor: string(ModoUnico), Marcado: modo == ModoUnico},
				{ID: "id_cadastro_modo_1", Nome: CampoCadastroModo, Tipo: TipoRadio, Valor: string(ModoMulti), Marcado: modo == ModoMulti},
			},
		})
	}

	for _, def := range camposBemPatrimonial {
		campo := &Campo{
			ID:     "id_" + def.nome,
			Nome:   def.nome,
			Tipo:   def.tipo,
			Opcoes: def.opcoes,
		}

		valor, informado := opcoes.Valores[def.nome]
		if campo.Marcavel() {
			campo.Marcado = informado && marcacaoVerdadeira(valor)
		} else {
			campo.Valor = valor
		}

		switch def.nome {
		case "status":
			campo.Desabilitado = true
			if campo.Valor == "" {
				campo.Valor = StatusAguardandoAprovacao
			}
		case CampoSemNumeracao:
			campo.Desabilitado = opcoes.Edicao
		case CampoNumeroPatrimonial:
			campo.Padrao = PadraoNumeroPatrimonial
			campo.Placeholder = PlaceholderEstruturado
		case CampoValorUnitario:
			campo.Placeholder = "0,00"
		}

		linhas = append(linhas, &LinhaFormulario{
			Nome:        "field-" + def.nome,
			Rotulo:      def.rotulo,
			Ajuda:       def.ajuda,
			Obrigatoria: def.obrigatoria,
			Campos:      []*Campo{campo},
		})
	}

	return linhas
}

// NovoFormularioBemPatrimonial monta o contexto do bem patrimonial e executa a carga
func NovoFormularioBemPatrimonial(opcoes OpcoesDefinicao, forcarMulti bool, payloadInicial string) *Formulario {
	ctx := NovoContexto(DefinicaoBemPatrimonial(opcoes), opcoes.Edicao, forcarMulti, payloadInicial)
	return NovoFormulario(ctx)
}

func marcacaoVerdadeira(valor string) bool {
	switch strings.ToLower(strings.TrimSpace(valor)) {
	case "on", "true", "1", "sim":
		return true
	default:
		return false
	}
}

// RotuloCampo retorna o rótulo de um campo do bem patrimonial, sem dois-pontos.
// Campos desconhecidos devolvem o próprio nome.
func RotuloCampo(nome string) string {
	for _, def := range camposBemPatrimonial {
		if def.nome == nome {
			return strings.TrimSpace(strings.TrimSuffix(def.rotulo, ":"))
		}
	}
	return nome
}
