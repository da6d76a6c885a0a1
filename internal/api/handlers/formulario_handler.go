package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/cadastro"
	middlewares "github.com/prefeitura-rio/app-bens-fisicos/internal/middleware"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/models"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/services"
)

// FormularioHandler expõe as sessões do formulário de cadastro de bens
type FormularioHandler struct {
	sessoes   *services.SessaoService
	validator *validator.Validate
}

func NewFormularioHandler(sessoes *services.SessaoService) *FormularioHandler {
	return &FormularioHandler{
		sessoes:   sessoes,
		validator: validator.New(),
	}
}

// AbrirFormulario godoc
// @Summary Abre um formulário de cadastro de bem patrimonial
// @Description Executa a carga do formulário: máscaras, hidratação do payload inicial e restauração do modo
// @Tags formularios
// @Accept json
// @Produce json
// @Param formulario body models.AbrirFormularioRequest false "Opções do formulário"
// @Success 201 {object} models.FormularioResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/admin/bens/formularios [post]
func (h *FormularioHandler) AbrirFormulario(c *gin.Context) {
	var request models.AbrirFormularioRequest
	// corpo vazio abre o formulário padrão
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou: " + err.Error()})
		return
	}

	id, estado := h.sessoes.Abrir(request)
	c.JSON(http.StatusCreated, models.FormularioResponse{ID: id, Estado: estado})
}

// ObterFormulario godoc
// @Summary Retorna o estado de um formulário
// @Tags formularios
// @Produce json
// @Param id path string true "ID do formulário"
// @Success 200 {object} models.FormularioResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/bens/formularios/{id} [get]
func (h *FormularioHandler) ObterFormulario(c *gin.Context) {
	id := c.Param("id")
	estado, err := h.sessoes.Obter(id)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FormularioResponse{ID: id, Estado: estado})
}

// AplicarEvento godoc
// @Summary Aplica uma interação do usuário ao formulário
// @Description Digitação, marcação, inclusão ou remoção de linha e troca de modo. Linha zero indica um campo do formulário principal.
// @Tags formularios
// @Accept json
// @Produce json
// @Param id path string true "ID do formulário"
// @Param evento body models.EventoRequest true "Evento"
// @Success 200 {object} models.FormularioResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/bens/formularios/{id}/eventos [post]
func (h *FormularioHandler) AplicarEvento(c *gin.Context) {
	var request models.EventoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou: " + err.Error()})
		return
	}

	id := c.Param("id")
	estado, err := h.sessoes.AplicarEvento(id, request)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FormularioResponse{ID: id, Estado: estado})
}

// EnviarFormulario godoc
// @Summary Envia o formulário
// @Description Roda o portão de validação e grava os bens. No modo múltiplo cada linha vira um bem do mesmo lote.
// @Tags formularios
// @Produce json
// @Param id path string true "ID do formulário"
// @Success 201 {object} models.EnvioResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} models.EnvioInvalidoResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/admin/bens/formularios/{id}/envio [post]
func (h *FormularioHandler) EnviarFormulario(c *gin.Context) {
	resultado, err := h.sessoes.Enviar(c.Request.Context(), c.Param("id"), middlewares.UsuarioResponsavel(c))
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.EnvioResponse{
		LoteID: resultado.LoteID,
		Modo:   resultado.Modo,
		Bens:   resultado.Bens,
	})
}

// DescartarFormulario godoc
// @Summary Descarta um formulário aberto
// @Tags formularios
// @Param id path string true "ID do formulário"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/bens/formularios/{id} [delete]
func (h *FormularioHandler) DescartarFormulario(c *gin.Context) {
	if err := h.sessoes.Descartar(c.Param("id")); err != nil {
		responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// responderErro traduz os erros do cadastro em status HTTP
func responderErro(c *gin.Context, err error) {
	var bloqueado *services.EnvioBloqueado
	var falha *services.FalhaRegistro

	switch {
	case errors.As(err, &bloqueado):
		c.JSON(http.StatusUnprocessableEntity, models.EnvioInvalidoResponse{
			Error:  "Validação falhou",
			Modo:   bloqueado.Falha.Modo,
			Erros:  bloqueado.Falha.Erros,
			Estado: bloqueado.Estado,
		})
	case errors.As(err, &falha):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validação falhou", "erros": falha.Erros})
	case errors.Is(err, services.ErrFormularioNaoEncontrado), errors.Is(err, services.ErrBemNaoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNumeroDuplicado):
		c.JSON(http.StatusConflict, gin.H{"error": services.ErrNumeroDuplicado.Error()})
	case errors.Is(err, services.ErrEnvioEmAndamento):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEventoInvalido),
		errors.Is(err, cadastro.ErrCampoInexistente),
		errors.Is(err, cadastro.ErrLinhaInexistente):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno: " + err.Error()})
	}
}
