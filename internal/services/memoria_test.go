package services

import (
	"context"
	"testing"

	"github.com/prefeitura-rio/app-bens-fisicos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositorioMemoriaCriarObter(t *testing.T) {
	repo := NewRepositorioMemoria()
	ctx := context.Background()

	criados, err := repo.Criar(ctx, []models.BemPatrimonial{{Nome: "Mesa"}, {ID: "fixo", Nome: "Cadeira"}})
	require.NoError(t, err)
	require.Len(t, criados, 2)
	assert.NotEmpty(t, criados[0].ID)
	assert.Equal(t, "fixo", criados[1].ID)

	bem, err := repo.Obter(ctx, "fixo")
	require.NoError(t, err)
	assert.Equal(t, "Cadeira", bem.Nome)

	_, err = repo.Obter(ctx, "inexistente")
	assert.ErrorIs(t, err, ErrBemNaoEncontrado)
}

func TestRepositorioMemoriaExisteNumero(t *testing.T) {
	repo := NewRepositorioMemoria()
	ctx := context.Background()
	_, err := repo.Criar(ctx, []models.BemPatrimonial{{NumeroPatrimonial: "Sala Técnica 1"}, {}})
	require.NoError(t, err)

	tests := []struct {
		numero string
		existe bool
	}{
		{"Sala Técnica 1", true},
		{"salatecnica1", true},
		{"SALA TECNICA 1", true},
		{"Sala 2", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.numero, func(t *testing.T) {
			existe, err := repo.ExisteNumeroPatrimonial(ctx, tt.numero)
			require.NoError(t, err)
			assert.Equal(t, tt.existe, existe)
		})
	}
}

func TestRepositorioMemoriaListar(t *testing.T) {
	repo := NewRepositorioMemoria()
	ctx := context.Background()
	_, err := repo.Criar(ctx, []models.BemPatrimonial{
		{ID: "1", LoteID: "l1", Status: "aguardando_aprovacao", Origem: "transferencia", CriadoEm: 10},
		{ID: "2", LoteID: "l1", Status: "aguardando_aprovacao", Origem: "movimentacao", CriadoEm: 30},
		{ID: "3", LoteID: "l2", Status: "aprovado", Origem: "transferencia", CriadoEm: 20},
	})
	require.NoError(t, err)

	ids := func(r *models.BemPatrimonialResponse) []string {
		var resultado []string
		for _, bem := range r.Bens {
			resultado = append(resultado, bem.ID)
		}
		return resultado
	}

	tests := []struct {
		name   string
		filtro FiltroBens
		found  int
		ids    []string
	}{
		{"sem filtro, mais recentes primeiro", FiltroBens{}, 3, []string{"2", "3", "1"}},
		{"por lote", FiltroBens{LoteID: "l1"}, 2, []string{"2", "1"}},
		{"por status", FiltroBens{Status: "aprovado"}, 1, []string{"3"}},
		{"por origem", FiltroBens{Origem: "transferencia"}, 2, []string{"3", "1"}},
		{"segunda página", FiltroBens{Pagina: 2, PorPagina: 2}, 3, []string{"1"}},
		{"página além do fim", FiltroBens{Pagina: 5, PorPagina: 2}, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resposta, err := repo.Listar(ctx, tt.filtro)
			require.NoError(t, err)
			assert.Equal(t, tt.found, resposta.Found)
			assert.Equal(t, 3, resposta.OutOf)
			assert.Equal(t, tt.ids, ids(resposta))
			assert.NotNil(t, resposta.Bens)
		})
	}
}

func TestFiltroBensNormalizar(t *testing.T) {
	assert.Equal(t, FiltroBens{Pagina: 1, PorPagina: 10}, FiltroBens{}.Normalizar())
	assert.Equal(t, FiltroBens{Pagina: 3, PorPagina: 10}, FiltroBens{Pagina: 3, PorPagina: 500}.Normalizar())
	assert.Equal(t, FiltroBens{Pagina: 2, PorPagina: 50}, FiltroBens{Pagina: 2, PorPagina: 50}.Normalizar())
}
