package typesense

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prefeitura-rio/app-bens-fisicos/internal/config"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEsquemaBens(t *testing.T) {
	schema := EsquemaBens("bens_patrimoniais")

	assert.Equal(t, "bens_patrimoniais", schema.Name)
	require.NotNil(t, schema.DefaultSortingField)
	assert.Equal(t, "criado_em", *schema.DefaultSortingField)

	campos := make(map[string]int)
	for i, f := range schema.Fields {
		campos[f.Name] = i
	}
	assert.NotContains(t, campos, "id")

	tests := []struct {
		nome     string
		tipo     string
		opcional bool
		facet    bool
	}{
		{"lote_id", "string", false, true},
		{"quantidade", "int32", false, false},
		{"valor_unitario_centavos", "int64", false, false},
		{"sem_numeracao", "bool", false, false},
		{"numero_patrimonial", "string", true, false},
		{"status", "string", false, true},
		{"criado_em", "int64", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			i, ok := campos[tt.nome]
			require.True(t, ok, "campo %s ausente", tt.nome)
			f := schema.Fields[i]

			assert.Equal(t, tt.tipo, f.Type)
			assert.Equal(t, tt.opcional, f.Optional != nil && *f.Optional)
			assert.Equal(t, tt.facet, f.Facet != nil && *f.Facet)
		})
	}
}

func TestFiltroBusca(t *testing.T) {
	tests := []struct {
		name     string
		filtro   services.FiltroBens
		esperado string
	}{
		{"vazio", services.FiltroBens{}, ""},
		{"status", services.FiltroBens{Status: "aprovado"}, "status:=`aprovado`"},
		{
			"combinado",
			services.FiltroBens{Origem: "transferencia", LoteID: "a-b"},
			"origem:=`transferencia` && lote_id:=`a-b`",
		},
		{"crase removida", services.FiltroBens{Status: "x`y"}, "status:=`xy`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.esperado, FiltroBusca(tt.filtro))
		})
	}
}

func novoRepositorioDeTeste(t *testing.T, handler http.HandlerFunc) *Repositorio {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	return NewRepositorio(&config.Config{
		TypesenseProtocol: u.Scheme,
		TypesenseHost:     u.Hostname(),
		TypesensePort:     u.Port(),
		TypesenseAPIKey:   "teste",
		BensCollection:    "bens",
	})
}

func TestRepositorioSaude(t *testing.T) {
	repo := novoRepositorioDeTeste(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true}`))
			return
		}
		http.NotFound(w, r)
	})

	assert.NoError(t, repo.Saude(context.Background()))
}

func TestRepositorioObterInexistente(t *testing.T) {
	repo := novoRepositorioDeTeste(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	_, err := repo.Obter(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, services.ErrBemNaoEncontrado)
}

func TestRepositorioExisteNumeroPatrimonial(t *testing.T) {
	filtros := make(chan string, 4)
	repo := novoRepositorioDeTeste(t, func(w http.ResponseWriter, r *http.Request) {
		filtros <- r.URL.Query().Get("filter_by")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"found":1,"out_of":3,"page":1,"hits":[{"document":{"id":"1","numero_patrimonial":"123.456789012-3"}}]}`))
	})

	existe, err := repo.ExisteNumeroPatrimonial(context.Background(), " 123.456789012-3 ")
	require.NoError(t, err)
	assert.True(t, existe)
	assert.Equal(t, "numero_patrimonial:=`123.456789012-3`", <-filtros)

	existe, err = repo.ExisteNumeroPatrimonial(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, existe)
}
