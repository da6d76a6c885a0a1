package cadastro

import (
	"errors"
	"fmt"
	"slices"
)

// ErrCampoInexistente indica um campo que não existe no formulário
var ErrCampoInexistente = errors.New("campo inexistente")

// Envio é o que segue para o servidor quando o portão de validação aprova o formulário
type Envio struct {
	Modo    Modo              `json:"cadastro_modo"`
	Payload string            `json:"multi_payload"`
	Linhas  []LinhaBem        `json:"linhas"`
	Campos  map[string]string `json:"campos"`
}

// Formulario liga os componentes do cadastro de bens a um Contexto
type Formulario struct {
	ctx     *Contexto
	modelo  *ModeloLinhas
	seletor *SeletorModo
	portao  *PortaoValidacao
	nativo  *ControladorNumeracao
}

// NovoFormulario executa a carga do formulário: máscaras nos campos nativos,
// hidratação das linhas a partir do payload inicial e restauração do modo
func NovoFormulario(ctx *Contexto) *Formulario {
	f := &Formulario{
		ctx:     ctx,
		modelo:  NovoModeloLinhas(),
		seletor: NovoSeletorModo(ctx),
		portao:  NovoPortaoValidacao(ctx),
	}

	if ctx.ValorUnitario != nil {
		ctx.ValorUnitario.Obrigatorio = true
		if valor := ctx.ValorUnitario.Valor; valor != "" {
			ctx.ValorUnitario.Valor = MascararValorMonetario(valor)
		}
	}

	if ctx.NumeroPatrimonial != nil && ctx.FormatoAntigo != nil {
		f.nativo = NovoControladorNumeracao(ctx.NumeroPatrimonial, ctx.FormatoAntigo, ctx.SemNumeracao, ctx.Edicao, nil)
		f.nativo.Atualizar()
	}

	f.hidratar(DecodificarPayload(ctx.PayloadInicial))
	f.seletor.Restaurar()
	f.recodificar()
	return f
}

// Contexto retorna o contexto do formulário
func (f *Formulario) Contexto() *Contexto {
	return f.ctx
}

// Modo retorna o modo exibido
func (f *Formulario) Modo() Modo {
	return f.seletor.Atual()
}

// Payload retorna o conteúdo atual do campo oculto multi_payload
func (f *Formulario) Payload() string {
	return f.ctx.PayloadOculto.Valor
}

// LinhasModelo retorna as linhas do modo múltiplo
func (f *Formulario) LinhasModelo() []LinhaBem {
	return f.modelo.Linhas()
}

// Linhas retorna as linhas editáveis, na ordem de exibição
func (f *Formulario) Linhas() []*LinhaView {
	return f.ctx.Multi.Linhas
}

// Linha retorna a linha pela posição exibida (base um)
func (f *Formulario) Linha(indice int) (*LinhaView, error) {
	if indice < 1 || indice > len(f.ctx.Multi.Linhas) {
		return nil, fmt.Errorf("%w: %d", ErrLinhaInexistente, indice)
	}
	return f.ctx.Multi.Linhas[indice-1], nil
}

// NumeracaoNativa retorna o modo do número patrimonial nativo
func (f *Formulario) NumeracaoNativa() ModoNumeracao {
	if f.nativo == nil {
		return NumeracaoEstruturada
	}
	return f.nativo.Modo()
}

// AdicionarLinha cria uma linha vazia no fim da lista
func (f *Formulario) AdicionarLinha() *LinhaView {
	f.portao.LimparMensagens()
	v := f.adicionar(LinhaBem{})
	f.recodificar()
	return v
}

// RemoverLinha exclui a linha pela posição exibida (base um) e renumera as seguintes
func (f *Formulario) RemoverLinha(indice int) error {
	if _, err := f.Linha(indice); err != nil {
		return err
	}
	if err := f.modelo.Remover(indice - 1); err != nil {
		return err
	}
	f.ctx.Multi.Linhas = slices.Delete(f.ctx.Multi.Linhas, indice-1, indice)
	for i, v := range f.ctx.Multi.Linhas {
		v.Indice = i + 1
	}
	f.portao.LimparMensagens()
	f.recodificar()
	return nil
}

// DigitarLinha recebe a digitação em um campo de texto da linha
func (f *Formulario) DigitarLinha(indice int, campo, texto string) error {
	v, err := f.Linha(indice)
	if err != nil {
		return err
	}
	f.portao.LimparMensagens()

	switch campo {
	case CampoNumeroPatrimonial:
		v.DigitarNumero(texto)
	case CampoLocalizacao:
		v.DigitarLocalizacao(texto)
	default:
		return fmt.Errorf("%w: %s", ErrCampoInexistente, campo)
	}
	return nil
}

// MarcarLinha altera uma marcação da linha
func (f *Formulario) MarcarLinha(indice int, campo string, marcado bool) error {
	v, err := f.Linha(indice)
	if err != nil {
		return err
	}
	f.portao.LimparMensagens()

	switch campo {
	case CampoFormatoAntigo:
		v.MarcarFormatoAntigo(marcado)
	case CampoSemNumeracao:
		v.MarcarSemNumeracao(marcado)
	default:
		return fmt.Errorf("%w: %s", ErrCampoInexistente, campo)
	}
	return nil
}

// DigitarCampo recebe a digitação em um campo nativo
func (f *Formulario) DigitarCampo(nome, texto string) error {
	campo := f.ctx.Campo(nome)
	if campo == nil || campo.Marcavel() {
		return fmt.Errorf("%w: %s", ErrCampoInexistente, nome)
	}
	f.portao.LimparMensagens()

	switch {
	case campo == f.ctx.NumeroPatrimonial && f.nativo != nil:
		f.nativo.Digitar(texto)
	case campo.Desabilitado || campo.SomenteLeitura:
	case campo == f.ctx.ValorUnitario:
		campo.Valor = FormatarValorMonetario(SomenteDigitos(texto))
	default:
		campo.Valor = texto
	}

	f.recodificar()
	return nil
}

// MarcarCampo altera uma caixa ou um rádio nativo. Para rádios, valor escolhe o membro do grupo.
func (f *Formulario) MarcarCampo(nome, valor string, marcado bool) error {
	grupo := f.ctx.Grupo(nome)
	if len(grupo) == 0 || !grupo[0].Marcavel() {
		return fmt.Errorf("%w: %s", ErrCampoInexistente, nome)
	}
	f.portao.LimparMensagens()

	campo := grupo[0]
	switch {
	case nome == CampoCadastroModo:
		f.seletor.Selecionar(ParseModo(valor))
	case campo.Tipo == TipoRadio:
		marcarRadio(grupo, valor)
	case campo == f.ctx.FormatoAntigo && f.nativo != nil:
		f.nativo.MarcarFormatoAntigo(marcado)
	case campo == f.ctx.SemNumeracao && f.nativo != nil:
		f.nativo.MarcarSemNumeracao(marcado)
	case !campo.Desabilitado:
		campo.Marcado = marcado
	}

	f.recodificar()
	return nil
}

// SelecionarModo troca o modo exibido sem perder as linhas já preenchidas
func (f *Formulario) SelecionarModo(modo Modo) {
	f.portao.LimparMensagens()
	f.seletor.Selecionar(modo)
	f.recodificar()
}

// Enviar roda o portão de validação. Se aprovado, grava o modo resolvido no campo oculto
// e devolve o envio; caso contrário devolve *FalhaValidacao.
func (f *Formulario) Enviar() (*Envio, error) {
	f.recodificar()

	modo := f.seletor.Resolver(f.modelo.Len())
	if err := f.portao.Validar(modo, f.ctx.Multi.Linhas); err != nil {
		return nil, err
	}

	f.ctx.ModoOculto.Valor = string(modo)
	if modo == ModoMulti {
		marcarRadio(f.ctx.RadiosModo, string(ModoMulti))
	}

	envio := &Envio{
		Modo:    modo,
		Payload: f.ctx.PayloadOculto.Valor,
		Linhas:  f.modelo.Linhas(),
		Campos:  f.valoresNativos(),
	}
	return envio, nil
}

func (f *Formulario) adicionar(linha LinhaBem) *LinhaView {
	registro := f.modelo.Adicionar(linha)
	v := novaLinhaView(len(f.ctx.Multi.Linhas)+1, registro, f.recodificar)
	f.ctx.Multi.Linhas = append(f.ctx.Multi.Linhas, v)
	return v
}

// hidratar recria as linhas do payload inicial; roda em qualquer modo
func (f *Formulario) hidratar(linhas []LinhaBem) {
	f.modelo.Limpar()
	f.ctx.Multi.Linhas = nil
	for _, linha := range linhas {
		f.adicionar(linha)
	}
}

func (f *Formulario) recodificar() {
	f.ctx.PayloadOculto.Valor = CodificarPayload(f.modelo.Linhas())
}

// valoresNativos reproduz o envio nativo: campos desabilitados e caixas desmarcadas ficam de fora
func (f *Formulario) valoresNativos() map[string]string {
	valores := make(map[string]string)
	for _, linha := range f.ctx.Linhas {
		for _, campo := range linha.Campos {
			if campo.Nome == "" || campo.Desabilitado {
				continue
			}
			switch campo.Tipo {
			case TipoCaixa:
				if campo.Marcado {
					valores[campo.Nome] = "on"
				}
			case TipoRadio:
				if campo.Marcado {
					valores[campo.Nome] = campo.Valor
				}
			default:
				valores[campo.Nome] = campo.Valor
			}
		}
	}
	valores[f.ctx.PayloadOculto.Nome] = f.ctx.PayloadOculto.Valor
	valores[f.ctx.ModoOculto.Nome] = f.ctx.ModoOculto.Valor
	return valores
}

func marcarRadio(grupo []*Campo, valor string) {
	for _, radio := range grupo {
		radio.Marcado = radio.Valor == valor
	}
}
