package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-bens-fisicos/internal/cadastro"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var instanteFixo = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func camposCompletos() map[string]string {
	return map[string]string{
		"nome":                          "Notebook",
		"descricao":                     "Notebook da secretaria",
		"quantidade":                    "5",
		cadastro.CampoValorUnitario:     "4.500,00",
		"marca":                         "Dell",
		"modelo":                        "Latitude",
		"data_compra_entrega":           "10/05/2024",
		"origem":                        cadastro.OrigemAquisicao,
		"numero_processo":               "SME-PRO-2024/123",
		cadastro.CampoNumeroPatrimonial: "123.456789012-3",
	}
}

func novoCadastroService(repo RepositorioBens) *CadastroService {
	s := NewCadastroService(repo)
	s.agora = func() time.Time { return instanteFixo }
	return s
}

func falhaRegistroDe(t *testing.T, err error) *FalhaRegistro {
	t.Helper()
	var falha *FalhaRegistro
	require.True(t, errors.As(err, &falha), "esperava *FalhaRegistro, veio %v", err)
	assert.ErrorIs(t, err, ErrRegistroInvalido)
	return falha
}

func mensagensRegistro(erros []ErroRegistro) []string {
	mensagens := make([]string, len(erros))
	for i, e := range erros {
		mensagens[i] = e.Mensagem
	}
	return mensagens
}

func TestRegistrarUnico(t *testing.T) {
	repo := NewRepositorioMemoria()
	s := novoCadastroService(repo)

	bens, err := s.Registrar(context.Background(), &cadastro.Envio{Modo: cadastro.ModoUnico, Campos: camposCompletos()}, "maria")
	require.NoError(t, err)
	require.Len(t, bens, 1)

	bem := bens[0]
	assert.NotEmpty(t, bem.ID)
	assert.NotEmpty(t, bem.LoteID)
	assert.Equal(t, int32(5), bem.Quantidade)
	assert.Equal(t, int64(450000), bem.ValorUnitarioCentavos)
	assert.Equal(t, "2024-05-10", bem.DataCompraEntrega)
	assert.Equal(t, cadastro.OrigemAquisicao, bem.Origem)
	assert.Equal(t, cadastro.StatusAguardandoAprovacao, bem.Status)
	assert.Equal(t, "123.456789012-3", bem.NumeroPatrimonial)
	assert.Equal(t, instanteFixo.Unix(), bem.CriadoEm)
	assert.Equal(t, "maria", bem.CriadoPor)

	existe, err := repo.ExisteNumeroPatrimonial(context.Background(), "123.456789012-3")
	require.NoError(t, err)
	assert.True(t, existe)
}

func TestRegistrarOrigemPeloRotulo(t *testing.T) {
	campos := camposCompletos()
	campos["origem"] = "Aquisição Direta"

	bens, err := novoCadastroService(NewRepositorioMemoria()).Registrar(context.Background(), &cadastro.Envio{Campos: campos}, "")
	require.NoError(t, err)
	assert.Equal(t, cadastro.OrigemAquisicao, bens[0].Origem)
}

func TestRegistrarMultiUmBemPorLinha(t *testing.T) {
	payload := cadastro.CodificarPayload([]cadastro.LinhaBem{
		{NumeroPatrimonial: "123.456789012-3", Localizacao: " Sala 1 "},
		{NumeroPatrimonial: "999", SemNumeracao: true},
		{NumeroPatrimonial: "ANTIGO-77", FormatoAntigo: true},
	})

	bens, err := novoCadastroService(NewRepositorioMemoria()).Registrar(context.Background(), &cadastro.Envio{
		Modo:    cadastro.ModoMulti,
		Payload: payload,
		Campos:  camposCompletos(),
	}, "joao")
	require.NoError(t, err)
	require.Len(t, bens, 3)

	for _, bem := range bens {
		assert.Equal(t, int32(1), bem.Quantidade)
		assert.Equal(t, bens[0].LoteID, bem.LoteID)
		assert.Equal(t, "Notebook", bem.Nome)
	}
	assert.Equal(t, "Sala 1", bens[0].Localizacao)
	assert.Empty(t, bens[1].NumeroPatrimonial, "sem numeração não guarda número")
	assert.True(t, bens[1].SemNumeracao)
	assert.Equal(t, "ANTIGO-77", bens[2].NumeroPatrimonial)
	assert.True(t, bens[2].NumeroFormatoAntigo)
}

func TestRegistrarMultiListaInvalida(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		mensagem string
	}{
		{"lista vazia", "[]", "Adicione ao menos uma linha no modo Múltiplos Bens."},
		{"payload ausente", "", "Adicione ao menos uma linha no modo Múltiplos Bens."},
		{"payload malformado", `{"linhas":1}`, "A lista de bens enviada é inválida."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := novoCadastroService(NewRepositorioMemoria()).Registrar(context.Background(), &cadastro.Envio{
				Modo:    cadastro.ModoMulti,
				Payload: tt.payload,
				Campos:  camposCompletos(),
			}, "")

			falha := falhaRegistroDe(t, err)
			assert.Contains(t, mensagensRegistro(falha.Erros), tt.mensagem)
		})
	}
}

func TestRegistrarNumeracao(t *testing.T) {
	tests := []struct {
		name     string
		ajustar  func(map[string]string)
		mensagem string
	}{
		{
			name: "ambas as marcações",
			ajustar: func(c map[string]string) {
				c[cadastro.CampoFormatoAntigo] = "on"
				c[cadastro.CampoSemNumeracao] = "on"
			},
			mensagem: "Selecione 'Formato antigo' OU 'Sem numeração', não ambos.",
		},
		{
			name:     "número ausente",
			ajustar:  func(c map[string]string) { delete(c, cadastro.CampoNumeroPatrimonial) },
			mensagem: "Informe o Número Patrimonial ou marque 'Sem numeração'.",
		},
		{
			name:     "fora do padrão estruturado",
			ajustar:  func(c map[string]string) { c[cadastro.CampoNumeroPatrimonial] = "12345" },
			mensagem: "O Número Patrimonial deve seguir o formato 000.000000000-0.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campos := camposCompletos()
			tt.ajustar(campos)

			_, err := novoCadastroService(NewRepositorioMemoria()).Registrar(context.Background(), &cadastro.Envio{Campos: campos}, "")
			falha := falhaRegistroDe(t, err)
			assert.Equal(t, []string{tt.mensagem}, mensagensRegistro(falha.Erros))
		})
	}
}

func TestRegistrarNumeracaoAceita(t *testing.T) {
	tests := []struct {
		name    string
		ajustar func(map[string]string)
		numero  string
	}{
		{
			name: "formato antigo livre",
			ajustar: func(c map[string]string) {
				c[cadastro.CampoNumeroPatrimonial] = "12345"
				c[cadastro.CampoFormatoAntigo] = "on"
			},
			numero: "12345",
		},
		{
			name: "sem numeração descarta o número",
			ajustar: func(c map[string]string) {
				c[cadastro.CampoSemNumeracao] = "on"
			},
			numero: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campos := camposCompletos()
			tt.ajustar(campos)

			bens, err := novoCadastroService(NewRepositorioMemoria()).Registrar(context.Background(), &cadastro.Envio{Campos: campos}, "")
			require.NoError(t, err)
			assert.Equal(t, tt.numero, bens[0].NumeroPatrimonial)
		})
	}
}

func TestRegistrarValorUnitario(t *testing.T) {
	tests := []struct {
		valor    string
		centavos int64
		mensagem string
	}{
		{"12,3", 1230, ""},
		{"1.234,56", 123456, ""},
		{"10", 1000, ""},
		{"", 0, "Informe o valor unitário (obrigatório)."},
		{"-1,00", 0, "Valor inválido. Use o formato 0,00 ou 0.000,00."},
		{"1,234", 0, "Valor inválido. Use o formato 0,00 ou 0.000,00."},
		{"1,2,3", 0, "Valor inválido. Use o formato 0,00 ou 0.000,00."},
		{"abc", 0, "Valor inválido. Use o formato 0,00 ou 0.000,00."},
	}

	for _, tt := range tests {
		t.Run(tt.valor, func(t *testing.T) {
			campos := camposCompletos()
			campos[cadastro.CampoValorUnitario] = tt.valor

			bens, err := novoCadastroService(NewRepositorioMemoria()).Registrar(context.Background(), &cadastro.Envio{Campos: campos}, "")
			if tt.mensagem == "" {
				require.NoError(t, err)
				require.Len(t, bens, 1)
				assert.Equal(t, tt.centavos, bens[0].ValorUnitarioCentavos)
				return
			}
			falha := falhaRegistroDe(t, err)
			assert.Equal(t, []string{tt.mensagem}, mensagensRegistro(falha.Erros))
		})
	}
}

func TestRegistrarCampoInvalidoNaoRepeteErro(t *testing.T) {
	campos := camposCompletos()
	campos["quantidade"] = "abc"
	campos["data_compra_entrega"] = "31/02/2024"

	_, err := novoCadastroService(NewRepositorioMemoria()).Registrar(context.Background(), &cadastro.Envio{Campos: campos}, "")
	falha := falhaRegistroDe(t, err)

	assert.Equal(t, []string{
		"Informe uma quantidade inteira maior que zero.",
		"Data inválida em Data da compra/entrega. Use dd/mm/aaaa.",
	}, mensagensRegistro(falha.Erros))
}

func TestRegistrarMultiErroComumUmaVez(t *testing.T) {
	campos := camposCompletos()
	delete(campos, "marca")
	payload := cadastro.CodificarPayload([]cadastro.LinhaBem{
		{NumeroPatrimonial: "123.456789012-3"},
		{NumeroPatrimonial: "123.456789012-4"},
		{},
	})

	_, err := novoCadastroService(NewRepositorioMemoria()).Registrar(context.Background(), &cadastro.Envio{
		Modo:    cadastro.ModoMulti,
		Payload: payload,
		Campos:  campos,
	}, "")
	falha := falhaRegistroDe(t, err)

	require.Len(t, falha.Erros, 2)
	assert.Equal(t, ErroRegistro{Campo: "marca", Mensagem: "Preencha o campo obrigatório: Marca."}, falha.Erros[0])
	assert.Equal(t, 3, falha.Erros[1].Linha)
	assert.Equal(t, "Linha 3: Informe o Número Patrimonial ou marque 'Sem numeração'.", falha.Erros[1].Mensagem)
}

func TestRegistrarNumeroRepetidoNoEnvio(t *testing.T) {
	payload := cadastro.CodificarPayload([]cadastro.LinhaBem{
		{NumeroPatrimonial: "ANT-1", FormatoAntigo: true},
		{NumeroPatrimonial: "ant-1", FormatoAntigo: true},
	})

	repo := NewRepositorioMemoria()
	_, err := novoCadastroService(repo).Registrar(context.Background(), &cadastro.Envio{
		Modo:    cadastro.ModoMulti,
		Payload: payload,
		Campos:  camposCompletos(),
	}, "")
	falha := falhaRegistroDe(t, err)

	require.Len(t, falha.Erros, 1)
	assert.Equal(t, 2, falha.Erros[0].Linha)
	assert.Equal(t, "Linha 2: Número Patrimonial repetido neste envio.", falha.Erros[0].Mensagem)

	lista, err := repo.Listar(context.Background(), FiltroBens{})
	require.NoError(t, err)
	assert.Zero(t, lista.Found, "nada é gravado quando o envio é rejeitado")
}

func TestRegistrarNumeroJaCadastrado(t *testing.T) {
	repo := NewRepositorioMemoria()
	_, err := repo.Criar(context.Background(), []models.BemPatrimonial{{NumeroPatrimonial: "123.456789012-3"}})
	require.NoError(t, err)

	_, err = novoCadastroService(repo).Registrar(context.Background(), &cadastro.Envio{Campos: camposCompletos()}, "")
	assert.ErrorIs(t, err, ErrNumeroDuplicado)
	assert.Contains(t, err.Error(), "O Número Patrimonial já está cadastrado no sistema.")
}

type repositorioComFalha struct {
	*RepositorioMemoria
	err error
}

func (r *repositorioComFalha) Criar(context.Context, []models.BemPatrimonial) ([]models.BemPatrimonial, error) {
	return nil, r.err
}

func TestRegistrarFalhaDoRepositorio(t *testing.T) {
	indisponivel := errors.New("typesense indisponível")
	repo := &repositorioComFalha{RepositorioMemoria: NewRepositorioMemoria(), err: indisponivel}

	_, err := novoCadastroService(repo).Registrar(context.Background(), &cadastro.Envio{Campos: camposCompletos()}, "")
	assert.ErrorIs(t, err, indisponivel)
	assert.NotErrorIs(t, err, ErrRegistroInvalido)
}

func TestParseData(t *testing.T) {
	tests := []struct {
		entrada  string
		esperado string
		erro     bool
	}{
		{"10/05/2024", "2024-05-10", false},
		{"2024-05-10", "2024-05-10", false},
		{"  01/12/2023 ", "2023-12-01", false},
		{"", "", false},
		{"31/02/2024", "", true},
		{"10-05-2024", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.entrada, func(t *testing.T) {
			data, err := ParseData(tt.entrada)
			if tt.erro {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.esperado, data)
		})
	}
}
