package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/prefeitura-rio/app-bens-fisicos/docs"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/api/routes"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/config"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/observability"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/services"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/typesense"
	"go.uber.org/zap"
)

// @title           Cadastro de Bens Físicos API
// @version         1.0
// @description     API do formulário de cadastro de bens patrimoniais: cadastro único ou múltiplo, numeração patrimonial e portão de validação
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      services.staging.app.dados.rio/app-bens-fisicos

func main() {

	cfg := config.LoadConfig()

	logger := observability.InitLogger(cfg.LogLevel)
	defer observability.SyncLogger()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repositorio := novoRepositorio(ctx, cfg)

	sessoes := services.NewSessaoService(cfg.Formulario, services.NewCadastroService(repositorio))
	sessoes.IniciarLimpeza(ctx, time.Minute)

	r := routes.SetupRouter(cfg, repositorio, sessoes)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Erro ao iniciar servidor: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("erro ao encerrar servidor", zap.Error(err))
	}
}

func novoRepositorio(ctx context.Context, cfg *config.Config) services.RepositorioBens {
	if cfg.BensRepositorio == config.RepositorioMemoria {
		return services.NewRepositorioMemoria()
	}

	repositorio := typesense.NewRepositorio(cfg)

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := repositorio.GarantirCollection(initCtx); err != nil {
		// o readiness continua reportando a falha até o Typesense responder
		observability.Logger().Error("falha ao preparar collection de bens", zap.Error(err))
	}
	return repositorio
}
