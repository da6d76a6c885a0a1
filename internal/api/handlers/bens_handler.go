package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/services"
)

type BensHandler struct {
	repositorio services.RepositorioBens
}

func NewBensHandler(repositorio services.RepositorioBens) *BensHandler {
	return &BensHandler{repositorio: repositorio}
}

// ListarBens godoc
// @Summary Lista os bens patrimoniais cadastrados
// @Description Lista paginada, mais recentes primeiro, com filtros opcionais
// @Tags bens
// @Produce json
// @Param page query int false "Página" default(1)
// @Param per_page query int false "Itens por página (máx. 100)" default(10)
// @Param status query string false "Status do bem"
// @Param origem query string false "Origem do bem"
// @Param lote_id query string false "Lote do envio"
// @Success 200 {object} models.BemPatrimonialResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/admin/bens [get]
func (h *BensHandler) ListarBens(c *gin.Context) {
	pagina, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || pagina < 1 {
		pagina = 1
	}

	porPagina, err := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil || porPagina < 1 || porPagina > 100 {
		porPagina = 10
	}

	resposta, err := h.repositorio.Listar(c.Request.Context(), services.FiltroBens{
		Pagina:    pagina,
		PorPagina: porPagina,
		Status:    c.Query("status"),
		Origem:    c.Query("origem"),
		LoteID:    c.Query("lote_id"),
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar bens: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resposta)
}

// ObterBem godoc
// @Summary Busca um bem patrimonial por ID
// @Tags bens
// @Produce json
// @Param id path string true "ID do bem"
// @Success 200 {object} models.BemPatrimonial
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/admin/bens/{id} [get]
func (h *BensHandler) ObterBem(c *gin.Context) {
	bem, err := h.repositorio.Obter(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, bem)
}
