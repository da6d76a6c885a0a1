// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - LOG_LEVEL: Nível do log estruturado: debug, info, warn, error (default: info)
//
// ## Repositório de bens
//   - BENS_REPOSITORIO: typesense ou memoria (default: typesense)
//   - BENS_COLLECTION: Collection dos bens patrimoniais (default: bens_patrimoniais)
//
// ## Typesense
//   - TYPESENSE_HOST: Host do servidor Typesense (default: localhost)
//   - TYPESENSE_PORT: Porta do servidor (default: 8108)
//   - TYPESENSE_API_KEY: Chave de API do Typesense
//   - TYPESENSE_PROTOCOL: Protocolo http/https (default: http)
//
// ## Formulários
//   - FORMULARIO_TTL_MINUTES: Tempo de vida de uma sessão de formulário sem uso (default: 60)
//   - FORMULARIO_MAX_SESSOES: Quantidade máxima de sessões abertas (default: 1000)
//   - TRAVA_ENVIO_SECONDS: Intervalo de liberação automática da trava de envio (default: 15)
//
// ## Agenda
//   - AGENDA_API_URL: Base da API de horários disponíveis (vazio desativa a consulta)
//   - AGENDA_TIMEOUT_SECONDS: Timeout da consulta de horários (default: 5)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita o exportador OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	RepositorioTypesense = "typesense"
	RepositorioMemoria   = "memoria"
)

type Config struct {
	TypesenseHost     string
	TypesensePort     string
	TypesenseAPIKey   string
	TypesenseProtocol string

	ServerPort string
	LogLevel   string

	// Repositório dos bens cadastrados
	BensRepositorio string
	BensCollection  string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string

	Formulario FormularioConfig

	// Agenda de horários (widget de data)
	AgendaAPIURL  string
	AgendaTimeout time.Duration
}

// FormularioConfig contém a configuração das sessões de formulário
type FormularioConfig struct {
	// Tempo sem uso após o qual a sessão é descartada
	TTL time.Duration

	// Quantidade máxima de sessões em memória
	MaxSessoes int

	// Intervalo da trava contra envio duplo
	TravaEnvio time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		TypesenseHost:     getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:     getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:   getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol: getEnv("TYPESENSE_PROTOCOL", "http"),

		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		BensRepositorio: strings.ToLower(getEnv("BENS_REPOSITORIO", RepositorioTypesense)),
		BensCollection:  getEnv("BENS_COLLECTION", "bens_patrimoniais"),

		TracingEnabled:  getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		Formulario: FormularioConfig{
			TTL:        time.Duration(getEnvInt("FORMULARIO_TTL_MINUTES", 60)) * time.Minute,
			MaxSessoes: getEnvInt("FORMULARIO_MAX_SESSOES", 1000),
			TravaEnvio: time.Duration(getEnvInt("TRAVA_ENVIO_SECONDS", 15)) * time.Second,
		},

		AgendaAPIURL:  getEnv("AGENDA_API_URL", ""),
		AgendaTimeout: time.Duration(getEnvInt("AGENDA_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	switch cfg.BensRepositorio {
	case RepositorioTypesense:
		if cfg.TypesenseAPIKey == "" {
			log.Fatal("TYPESENSE_API_KEY environment variable is required when BENS_REPOSITORIO=typesense")
		}
	case RepositorioMemoria:
		log.Println("BENS_REPOSITORIO=memoria: bens cadastrados não serão persistidos")
	default:
		log.Fatalf("BENS_REPOSITORIO inválido: %q (use %q ou %q)", cfg.BensRepositorio, RepositorioTypesense, RepositorioMemoria)
	}

	if cfg.Formulario.MaxSessoes <= 0 {
		log.Fatalf("FORMULARIO_MAX_SESSOES deve ser positivo, recebido %d", cfg.Formulario.MaxSessoes)
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
