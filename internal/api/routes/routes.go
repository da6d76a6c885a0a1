package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/agenda"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/api/handlers"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/config"
	middlewares "github.com/prefeitura-rio/app-bens-fisicos/internal/middleware"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfg *config.Config, repositorio services.RepositorioBens, sessoes *services.SessaoService) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestTiming())

	healthHandler := handlers.NewHealthHandler(repositorio, sessoes)
	formularioHandler := handlers.NewFormularioHandler(sessoes)
	bensHandler := handlers.NewBensHandler(repositorio)
	agendaHandler := handlers.NewAgendaHandler(agenda.NewClient(cfg.AgendaAPIURL, cfg.AgendaTimeout))

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")
	{
		// Qualquer usuário autenticado consulta a agenda
		agendaGroup := api.Group("/agenda")
		agendaGroup.Use(middlewares.ExtractUserContext())
		agendaGroup.Use(middlewares.JWTAuthMiddleware())
		agendaGroup.Use(middlewares.RequireAuthentication())
		{
			agendaGroup.GET("/horarios_disponiveis", agendaHandler.HorariosDisponiveis)
		}

		// Cadastro de bens: headers do Istio ou, na falta deles, o JWT
		admin := api.Group("/admin")
		admin.Use(middlewares.ExtractUserContext())
		admin.Use(middlewares.JWTAuthMiddleware())
		admin.Use(middlewares.RequireRole(middlewares.RoleAdmin, middlewares.RolePatrimonio))
		{
			admin.POST("/bens/formularios", formularioHandler.AbrirFormulario)
			admin.GET("/bens/formularios/:id", formularioHandler.ObterFormulario)
			admin.DELETE("/bens/formularios/:id", formularioHandler.DescartarFormulario)
			admin.POST("/bens/formularios/:id/eventos", formularioHandler.AplicarEvento)
			admin.POST("/bens/formularios/:id/envio", formularioHandler.EnviarFormulario)

			admin.GET("/bens", bensHandler.ListarBens)
			admin.GET("/bens/:id", bensHandler.ObterBem)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-User-CPF, X-User-ID, X-User-Name, X-User-Email, X-User-Role")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
