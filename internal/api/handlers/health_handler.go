package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/services"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	repositorio services.RepositorioBens
	sessoes     *services.SessaoService
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(repositorio services.RepositorioBens, sessoes *services.SessaoService) *HealthHandler {
	return &HealthHandler{
		repositorio: repositorio,
		sessoes:     sessoes,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Sessoes   *int              `json:"sessoes_abertas,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness check endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness check endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (valida o repositório de bens)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.repositorio.Saude(ctx); err != nil {
		response.Checks["repositorio"] = "failed"
		response.Status = "not_ready"
		response.Error = "Repositório de bens indisponível"
	} else {
		response.Checks["repositorio"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação (para monitoramento externo de uptime)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	abertas := h.sessoes.Sessoes()
	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Sessoes:   &abertas,
		Timestamp: time.Now().Unix(),
	}

	if err := h.repositorio.Saude(ctx); err != nil {
		response.Checks["repositorio"] = "failed"
		response.Status = "unhealthy"
		response.Error = "Falha ao verificar o repositório de bens: " + err.Error()
	} else {
		response.Checks["repositorio"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
