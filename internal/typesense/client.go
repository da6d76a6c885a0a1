package typesense

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/config"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/models"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/observability"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/services"
	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
	"go.uber.org/zap"
)

// campos com facet na collection de bens
var camposFacetados = map[string]bool{
	"lote_id": true,
	"origem":  true,
	"status":  true,
}

// Repositorio grava os bens patrimoniais em uma collection do Typesense
type Repositorio struct {
	client     *typesense.Client
	collection string
}

var _ services.RepositorioBens = (*Repositorio)(nil)

// NewRepositorio cria o repositório a partir da configuração
func NewRepositorio(cfg *config.Config) *Repositorio {
	client := typesense.NewClient(
		typesense.WithServer(fmt.Sprintf("%s://%s:%s", cfg.TypesenseProtocol, cfg.TypesenseHost, cfg.TypesensePort)),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
	)

	return &Repositorio{
		client:     client,
		collection: cfg.BensCollection,
	}
}

// GarantirCollection cria a collection de bens se ela ainda não existir
func (r *Repositorio) GarantirCollection(ctx context.Context) error {
	_, err := r.client.Collection(r.collection).Retrieve(ctx)
	if err == nil {
		return nil
	}
	if !naoEncontrado(err) {
		return fmt.Errorf("erro ao verificar collection %s: %w", r.collection, err)
	}

	observability.Logger().Info("criando collection de bens", zap.String("collection", r.collection))
	if _, err := r.client.Collections().Create(ctx, EsquemaBens(r.collection)); err != nil {
		return fmt.Errorf("erro ao criar collection %s: %w", r.collection, err)
	}
	return nil
}

// EsquemaBens monta o schema da collection a partir das tags typesense de models.BemPatrimonial
func EsquemaBens(nome string) *api.CollectionSchema {
	var campos []api.Field

	tipo := reflect.TypeOf(models.BemPatrimonial{})
	for i := 0; i < tipo.NumField(); i++ {
		campo := tipo.Field(i)
		tag := campo.Tag.Get("typesense")
		if tag == "" || tag == "-" {
			continue
		}

		partes := strings.Split(tag, ",")
		nomeCampo := partes[0]
		// o id é atributo do documento, não campo do schema
		if nomeCampo == "id" {
			continue
		}

		field := api.Field{Name: nomeCampo, Type: tipoTypesense(campo.Type.Kind())}
		for _, opcao := range partes[1:] {
			if opcao == "optional" {
				field.Optional = pointer.True()
			}
		}
		if camposFacetados[nomeCampo] {
			field.Facet = pointer.True()
		}
		if nomeCampo == "criado_em" {
			field.Sort = pointer.True()
		}
		campos = append(campos, field)
	}

	return &api.CollectionSchema{
		Name:                nome,
		Fields:              campos,
		DefaultSortingField: pointer.String("criado_em"),
	}
}

func tipoTypesense(kind reflect.Kind) string {
	switch kind {
	case reflect.Int32:
		return "int32"
	case reflect.Int64:
		return "int64"
	case reflect.Bool:
		return "bool"
	default:
		return "string"
	}
}

func (r *Repositorio) ExisteNumeroPatrimonial(ctx context.Context, numero string) (bool, error) {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return false, nil
	}

	params := &api.SearchCollectionParams{
		Q:        pointer.String("*"),
		FilterBy: pointer.String("numero_patrimonial:=" + escaparFiltro(numero)),
		PerPage:  pointer.Int(1),
	}

	resultado, err := r.buscar(ctx, params)
	if err != nil {
		return false, err
	}
	return resultado.Found > 0, nil
}

func (r *Repositorio) Criar(ctx context.Context, bens []models.BemPatrimonial) ([]models.BemPatrimonial, error) {
	criados := make([]models.BemPatrimonial, 0, len(bens))

	for _, bem := range bens {
		if bem.ID == "" {
			bem.ID = uuid.NewString()
		}

		documento, err := structToMap(bem)
		if err != nil {
			r.desfazer(ctx, criados)
			return nil, fmt.Errorf("erro ao serializar bem: %w", err)
		}

		if _, err := r.client.Collection(r.collection).Documents().Create(ctx, documento, &api.DocumentIndexParameters{}); err != nil {
			r.desfazer(ctx, criados)
			return nil, fmt.Errorf("erro ao gravar bem no Typesense: %w", err)
		}
		criados = append(criados, bem)
	}

	return criados, nil
}

// desfazer remove os bens já gravados de um envio que falhou no meio
func (r *Repositorio) desfazer(ctx context.Context, criados []models.BemPatrimonial) {
	for _, bem := range criados {
		if _, err := r.client.Collection(r.collection).Document(bem.ID).Delete(ctx); err != nil {
			observability.Logger().Error("erro ao desfazer gravação parcial",
				zap.String("id", bem.ID),
				zap.String("lote_id", bem.LoteID),
				zap.Error(err))
		}
	}
}

func (r *Repositorio) Obter(ctx context.Context, id string) (*models.BemPatrimonial, error) {
	documento, err := r.client.Collection(r.collection).Document(id).Retrieve(ctx)
	if err != nil {
		if naoEncontrado(err) {
			return nil, services.ErrBemNaoEncontrado
		}
		return nil, fmt.Errorf("erro ao buscar bem: %w", err)
	}

	var bem models.BemPatrimonial
	data, err := json.Marshal(documento)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar resultado: %w", err)
	}
	if err := json.Unmarshal(data, &bem); err != nil {
		return nil, fmt.Errorf("erro ao deserializar resultado: %w", err)
	}
	return &bem, nil
}

func (r *Repositorio) Listar(ctx context.Context, filtro services.FiltroBens) (*models.BemPatrimonialResponse, error) {
	filtro = filtro.Normalizar()

	params := &api.SearchCollectionParams{
		Q:       pointer.String("*"),
		SortBy:  pointer.String("criado_em:desc"),
		Page:    pointer.Int(filtro.Pagina),
		PerPage: pointer.Int(filtro.PorPagina),
	}
	if filterBy := FiltroBusca(filtro); filterBy != "" {
		params.FilterBy = pointer.String(filterBy)
	}

	resultado, err := r.buscar(ctx, params)
	if err != nil {
		return nil, err
	}

	resposta := &models.BemPatrimonialResponse{
		Found: resultado.Found,
		OutOf: resultado.OutOf,
		Page:  filtro.Pagina,
		Bens:  make([]models.BemPatrimonial, 0, len(resultado.Hits)),
	}
	for _, hit := range resultado.Hits {
		resposta.Bens = append(resposta.Bens, hit.Document)
	}
	return resposta, nil
}

func (r *Repositorio) Saude(ctx context.Context) error {
	ok, err := r.client.Health(ctx, 2*time.Second)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("typesense respondeu não saudável")
	}
	return nil
}

// FiltroBusca monta o filter_by do Typesense para a listagem
func FiltroBusca(filtro services.FiltroBens) string {
	var condicoes []string
	for _, c := range []struct{ campo, valor string }{
		{"status", filtro.Status},
		{"origem", filtro.Origem},
		{"lote_id", filtro.LoteID},
	} {
		if c.valor != "" {
			condicoes = append(condicoes, c.campo+":="+escaparFiltro(c.valor))
		}
	}
	return strings.Join(condicoes, " && ")
}

// escaparFiltro envolve o valor em crases para que pontos, hífens e espaços não quebrem o filter_by
func escaparFiltro(valor string) string {
	return "`" + strings.ReplaceAll(valor, "`", "") + "`"
}

type resultadoBusca struct {
	Found int `json:"found"`
	OutOf int `json:"out_of"`
	Hits  []struct {
		Document models.BemPatrimonial `json:"document"`
	} `json:"hits"`
}

func (r *Repositorio) buscar(ctx context.Context, params *api.SearchCollectionParams) (*resultadoBusca, error) {
	result, err := r.client.Collection(r.collection).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar bens: %w", err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar resultado: %w", err)
	}

	var resultado resultadoBusca
	if err := json.Unmarshal(data, &resultado); err != nil {
		return nil, fmt.Errorf("erro ao deserializar resultado: %w", err)
	}
	return &resultado, nil
}

func naoEncontrado(err error) bool {
	return strings.Contains(err.Error(), "404") || strings.Contains(err.Error(), "Not found")
}

// structToMap converte o bem no documento enviado ao Typesense
func structToMap(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}
