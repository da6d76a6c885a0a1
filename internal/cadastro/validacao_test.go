package cadastro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidarObrigatoriosGrupoDeMarcacao(t *testing.T) {
	linhas := []*LinhaFormulario{
		{
			Nome:        "field-cor",
			Rotulo:      "**Cor**:",
			Obrigatoria: true,
			Campos: []*Campo{
				{ID: "id_cor_0", Nome: "cor", Tipo: TipoRadio, Valor: "azul"},
				{ID: "id_cor_1", Nome: "cor", Tipo: TipoRadio, Valor: "verde"},
			},
		},
	}
	ctx := NovoContexto(linhas, false, false, "")
	portao := NovoPortaoValidacao(ctx)

	erros := portao.ValidarObrigatorios()
	require.Len(t, erros, 1)
	assert.Equal(t, "Preencha o campo obrigatório: Cor.", erros[0].Mensagem)
	assert.True(t, linhas[0].Campos[0].Erro)
	assert.True(t, linhas[0].Campos[1].Erro)

	linhas[0].Campos[1].Marcado = true
	assert.Empty(t, portao.ValidarObrigatorios())
	assert.False(t, linhas[0].Campos[0].Erro)
	assert.False(t, linhas[0].Erro)
}

func TestValidarObrigatoriosCaixaUnica(t *testing.T) {
	aceite := &Campo{Nome: "aceite", Tipo: TipoCaixa, Obrigatorio: true}
	ctx := NovoContexto([]*LinhaFormulario{{Nome: "field-aceite", Rotulo: "Aceito os termos", Campos: []*Campo{aceite}}}, false, false, "")
	portao := NovoPortaoValidacao(ctx)

	require.Len(t, portao.ValidarObrigatorios(), 1)

	aceite.Marcado = true
	assert.Empty(t, portao.ValidarObrigatorios())
}

func TestValidarObrigatoriosIgnoraDesabilitado(t *testing.T) {
	campo := &Campo{Nome: "status", Tipo: TipoSelecao, Desabilitado: true}
	ctx := NovoContexto([]*LinhaFormulario{{Nome: "field-status", Obrigatoria: true, Campos: []*Campo{campo}}}, false, false, "")

	assert.Empty(t, NovoPortaoValidacao(ctx).ValidarObrigatorios())
	assert.False(t, ctx.ErrosBase.Visivel)
}

func TestValidarObrigatoriosTextoEmBranco(t *testing.T) {
	campo := &Campo{Nome: "nome", Tipo: TipoTexto, Valor: "   "}
	ctx := NovoContexto([]*LinhaFormulario{{Nome: "field-nome", Rotulo: "Nome:", Obrigatoria: true, Campos: []*Campo{campo}}}, false, false, "")

	erros := NovoPortaoValidacao(ctx).ValidarObrigatorios()
	require.Len(t, erros, 1)
	assert.Equal(t, "nome", erros[0].Campo)
	assert.True(t, campo.Obrigatorio)
}

func TestRotuloDe(t *testing.T) {
	comRotulo := &Campo{Nome: "marca", ID: "id_marca"}
	semRotulo := &Campo{Nome: "modelo", ID: "id_modelo"}
	somenteID := &Campo{ID: "id_serie"}
	anonimo := &Campo{}
	soDoisPontos := &Campo{Nome: "origem"}

	ctx := NovoContexto([]*LinhaFormulario{
		{Nome: "field-marca", Rotulo: "Marca *do fabricante*:", Campos: []*Campo{comRotulo}},
		{Nome: "field-modelo", Campos: []*Campo{semRotulo}},
		{Nome: "field-serie", Campos: []*Campo{somenteID}},
		{Nome: "field-origem", Rotulo: ":", Campos: []*Campo{soDoisPontos}},
	}, false, false, "")

	assert.Equal(t, "Marca do fabricante", ctx.RotuloDe(comRotulo))
	assert.Equal(t, "modelo", ctx.RotuloDe(semRotulo))
	assert.Equal(t, "id_serie", ctx.RotuloDe(somenteID))
	assert.Equal(t, "Campo obrigatório", ctx.RotuloDe(anonimo))
	assert.Equal(t, "origem", ctx.RotuloDe(soDoisPontos))
}

func TestValidarLinhasIndicesPorLinha(t *testing.T) {
	f := novoFormularioCompleto(t)
	f.AdicionarLinha().DigitarNumero("1234567890123")
	f.AdicionarLinha()
	f.AdicionarLinha().MarcarSemNumeracao(true)
	f.AdicionarLinha().DigitarLocalizacao("Sala 9")

	erros := NovoPortaoValidacao(f.Contexto()).ValidarLinhas(f.Linhas())

	require.Len(t, erros, 2)
	assert.Equal(t, 2, erros[0].Linha)
	assert.Equal(t, 4, erros[1].Linha)
	assert.False(t, f.Linhas()[0].Numero.Erro)
	assert.True(t, f.Linhas()[1].Numero.Erro)
	assert.False(t, f.Linhas()[2].Numero.Erro)
	assert.True(t, f.Linhas()[3].Numero.Erro)
}

func TestValidarUnicoLimpaBannerMulti(t *testing.T) {
	f := novoFormularioCompleto(t)
	ctx := f.Contexto()
	ctx.ErrosMulti.Exibir([]string{"antiga"})

	assert.NoError(t, NovoPortaoValidacao(ctx).Validar(ModoUnico, nil))
	assert.False(t, ctx.ErrosMulti.Visivel)
	assert.Empty(t, ctx.ErrosMulti.Mensagens)
}

func TestValidarUnicoLimpaDestaqueDasLinhas(t *testing.T) {
	f := novoFormularioCompleto(t)
	f.AdicionarLinha()
	portao := NovoPortaoValidacao(f.Contexto())

	require.Error(t, portao.Validar(ModoMulti, f.Linhas()))
	require.True(t, f.Linhas()[0].Numero.Erro)

	assert.NoError(t, portao.Validar(ModoUnico, nil))
	assert.False(t, f.Linhas()[0].Numero.Erro)
}

func TestLimparMensagensLimpaDestaqueDasLinhas(t *testing.T) {
	f := novoFormularioCompleto(t)
	f.AdicionarLinha()
	portao := NovoPortaoValidacao(f.Contexto())
	require.Error(t, portao.Validar(ModoMulti, f.Linhas()))

	portao.LimparMensagens()

	assert.False(t, f.Contexto().ErrosMulti.Visivel)
	assert.False(t, f.Linhas()[0].Numero.Erro)
}

func TestFalhaValidacaoError(t *testing.T) {
	falha := &FalhaValidacao{Modo: ModoMulti, Erros: []ErroValidacao{
		{Tipo: ErroListaVazia, Mensagem: "a."},
		{Tipo: ErroLinhaIncompleta, Linha: 1, Mensagem: "b."},
	}}

	assert.Equal(t, "validação falhou com 2 erro(s): a. b.", falha.Error())
	assert.Equal(t, "b.", falha.Erros[1].Error())
}
