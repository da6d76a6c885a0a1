// Package agenda consulta a API de horários disponíveis usada pelo widget de data.
package agenda

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prefeitura-rio/app-bens-fisicos/internal/observability"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const caminhoHorarios = "/agenda/horarios_disponiveis/"

// Client busca os horários livres de uma data
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient cria o cliente. baseURL vazia desativa a consulta.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// HorariosDisponiveis retorna os horários livres da data, na ordem recebida.
// Falhas de rede ou de formato não são propagadas: o widget apenas fica sem opções.
func (c *Client) HorariosDisponiveis(ctx context.Context, data string) []string {
	ctx, span := observability.Tracer("agenda").Start(ctx, "agenda.HorariosDisponiveis")
	defer span.End()
	span.SetAttributes(attribute.String("agenda.data", data))

	horarios, err := c.buscar(ctx, data)
	if err != nil {
		observability.Logger().Debug("consulta de horários falhou",
			zap.String("data", data),
			zap.Error(err))
		return []string{}
	}
	span.SetAttributes(attribute.Int("agenda.horarios", len(horarios)))
	return horarios
}

func (c *Client) buscar(ctx context.Context, data string) ([]string, error) {
	endereco := utils.MontarURL(c.baseURL, caminhoHorarios, url.Values{"data": {data}})
	if endereco == "" {
		return nil, fmt.Errorf("AGENDA_API_URL ausente ou inválida: %q", c.baseURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endereco, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agenda respondeu %d", resp.StatusCode)
	}

	var horarios []string
	if err := json.NewDecoder(resp.Body).Decode(&horarios); err != nil {
		return nil, fmt.Errorf("resposta da agenda inválida: %w", err)
	}
	if horarios == nil {
		horarios = []string{}
	}
	return horarios, nil
}
