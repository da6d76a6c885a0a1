package cadastro

import (
	"fmt"
	"strings"
)

// TipoErro classifica as falhas do portão de validação
type TipoErro string

const (
	ErroCampoObrigatorio TipoErro = "campo_obrigatorio"
	ErroListaVazia       TipoErro = "lista_vazia"
	ErroLinhaIncompleta  TipoErro = "linha_incompleta"
)

const (
	msgCampoObrigatorio = "Preencha o campo obrigatório: %s."
	msgListaVazia       = "Adicione ao menos uma linha no modo Múltiplos Bens."
	msgLinhaIncompleta  = "Linha %d: Informe o Nº Patrimonial ou marque \"Sem numeração\"."
)

// ErroValidacao é uma mensagem exibida ao usuário
type ErroValidacao struct {
	Tipo     TipoErro `json:"tipo"`
	Campo    string   `json:"campo,omitempty"`
	Linha    int      `json:"linha,omitempty"`
	Mensagem string   `json:"mensagem"`
}

func (e ErroValidacao) Error() string {
	return e.Mensagem
}

// FalhaValidacao agrega os erros que bloquearam o envio
type FalhaValidacao struct {
	Modo  Modo
	Erros []ErroValidacao
}

func (f *FalhaValidacao) Error() string {
	return fmt.Sprintf("validação falhou com %d erro(s): %s", len(f.Erros), strings.Join(f.Mensagens(), " "))
}

// Mensagens retorna os textos dos erros, na ordem em que foram encontrados
func (f *FalhaValidacao) Mensagens() []string {
	return mensagensDe(f.Erros)
}

// PortaoValidacao roda as verificações de envio sobre o contexto
type PortaoValidacao struct {
	ctx *Contexto
}

// NovoPortaoValidacao cria o portão para o contexto
func NovoPortaoValidacao(ctx *Contexto) *PortaoValidacao {
	return &PortaoValidacao{ctx: ctx}
}

// Validar executa as duas passagens. A passagem das linhas só roda no modo múltiplo.
// Retorna *FalhaValidacao quando alguma delas falha.
func (p *PortaoValidacao) Validar(modo Modo, linhas []*LinhaView) error {
	erros := p.ValidarObrigatorios()

	if modo == ModoMulti {
		erros = append(erros, p.ValidarLinhas(linhas)...)
	} else {
		p.ctx.ErrosMulti.Limpar()
		p.limparDestaquesLinhas()
	}

	if len(erros) > 0 {
		return &FalhaValidacao{Modo: modo, Erros: erros}
	}
	return nil
}

// ValidarObrigatorios verifica os campos obrigatórios do formulário hospedeiro.
// Campos do bloco múltiplo ficam de fora; são cobertos por ValidarLinhas.
func (p *PortaoValidacao) ValidarObrigatorios() []ErroValidacao {
	p.limparDestaques()
	p.aplicarObrigatoriedade()

	var erros []ErroValidacao
	gruposVistos := make(map[string]bool)
	for _, campo := range p.camposObrigatorios() {
		if !p.vazio(campo) {
			continue
		}
		p.destacar(campo)

		if campo.Marcavel() && campo.Nome != "" {
			if gruposVistos[campo.Nome] {
				continue
			}
			gruposVistos[campo.Nome] = true
		}

		erros = append(erros, ErroValidacao{
			Tipo:     ErroCampoObrigatorio,
			Campo:    campo.Nome,
			Mensagem: fmt.Sprintf(msgCampoObrigatorio, p.ctx.RotuloDe(campo)),
		})
	}

	p.ctx.ErrosBase.Exibir(mensagensDe(erros))
	return erros
}

// ValidarLinhas exige ao menos uma linha e, em cada linha, o número patrimonial ou "sem numeração".
// A localização não é exigida aqui.
func (p *PortaoValidacao) ValidarLinhas(linhas []*LinhaView) []ErroValidacao {
	var erros []ErroValidacao
	if len(linhas) == 0 {
		erros = append(erros, ErroValidacao{Tipo: ErroListaVazia, Mensagem: msgListaVazia})
	}

	for i, v := range linhas {
		indice := i + 1
		if !v.SemNumeracao.Marcado && strings.TrimSpace(v.Numero.Valor) == "" {
			v.Numero.Erro = true
			erros = append(erros, ErroValidacao{
				Tipo:     ErroLinhaIncompleta,
				Campo:    CampoNumeroPatrimonial,
				Linha:    indice,
				Mensagem: fmt.Sprintf(msgLinhaIncompleta, indice),
			})
			continue
		}
		v.Numero.Erro = false
	}

	p.ctx.ErrosMulti.Exibir(mensagensDe(erros))
	return erros
}

// LimparMensagens oculta os dois banners e o destaque das linhas; chamado na próxima edição do usuário
func (p *PortaoValidacao) LimparMensagens() {
	p.ctx.ErrosBase.Limpar()
	p.ctx.ErrosMulti.Limpar()
	p.limparDestaquesLinhas()
}

func (p *PortaoValidacao) limparDestaquesLinhas() {
	for _, v := range p.ctx.Multi.Linhas {
		v.Numero.Erro = false
	}
}

func (p *PortaoValidacao) limparDestaques() {
	for _, linha := range p.ctx.Linhas {
		linha.Erro = false
		for _, campo := range linha.Campos {
			campo.Erro = false
		}
	}
}

// aplicarObrigatoriedade propaga a marcação de linha obrigatória para seus controles
func (p *PortaoValidacao) aplicarObrigatoriedade() {
	for _, linha := range p.ctx.Linhas {
		if !linha.Obrigatoria {
			continue
		}
		for _, campo := range linha.Campos {
			campo.Obrigatorio = true
		}
	}
}

func (p *PortaoValidacao) camposObrigatorios() []*Campo {
	var campos []*Campo
	for _, linha := range p.ctx.Linhas {
		for _, campo := range linha.Campos {
			if campo.Obrigatorio || linha.Obrigatoria {
				campos = append(campos, campo)
			}
		}
	}
	return campos
}

// vazio aplica a regra de preenchimento: desabilitado nunca está vazio; grupos de marcação
// precisam de um membro marcado; os demais precisam de texto não vazio
func (p *PortaoValidacao) vazio(campo *Campo) bool {
	if campo.Desabilitado {
		return false
	}

	if campo.Marcavel() {
		if campo.Nome != "" {
			if grupo := p.ctx.Grupo(campo.Nome); len(grupo) > 1 {
				for _, membro := range grupo {
					if membro.Marcado {
						return false
					}
				}
				return true
			}
		}
		return !campo.Marcado
	}

	return strings.TrimSpace(campo.Valor) == ""
}

func (p *PortaoValidacao) destacar(campo *Campo) {
	campo.Erro = true
	if linha := p.ctx.LinhaDe(campo); linha != nil {
		linha.Erro = true
	}
}

func mensagensDe(erros []ErroValidacao) []string {
	mensagens := make([]string, len(erros))
	for i, e := range erros {
		mensagens[i] = e.Mensagem
	}
	return mensagens
}
