package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/agenda"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/models"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/services"
)

type AgendaHandler struct {
	client *agenda.Client
}

func NewAgendaHandler(client *agenda.Client) *AgendaHandler {
	return &AgendaHandler{client: client}
}

// HorariosDisponiveis godoc
// @Summary Lista os horários disponíveis de uma data
// @Description Consulta a API de agenda. Falhas na consulta resultam em lista vazia.
// @Tags agenda
// @Produce json
// @Param data query string true "Data (dd/mm/aaaa ou aaaa-mm-dd)"
// @Success 200 {object} models.HorariosResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/agenda/horarios_disponiveis [get]
func (h *AgendaHandler) HorariosDisponiveis(c *gin.Context) {
	data, err := services.ParseData(c.Query("data"))
	if err != nil || data == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe a data no formato dd/mm/aaaa"})
		return
	}

	c.JSON(http.StatusOK, models.HorariosResponse{
		Data:     data,
		Horarios: h.client.HorariosDisponiveis(c.Request.Context(), data),
	})
}
