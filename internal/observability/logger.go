package observability

import (
	"log"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger   = zap.NewNop()
	loggerMu sync.RWMutex
)

// InitLogger configura o logger estruturado do processo. Nível inválido vira info.
func InitLogger(nivel string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseNivel(nivel))
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.Fields(zap.String("service", ServiceName)))
	if err != nil {
		log.Printf("Falha ao criar logger estruturado, usando no-op: %v", err)
		l = zap.NewNop()
	}

	SetLogger(l)
	return l
}

// SetLogger troca o logger do processo (usado em testes)
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// Logger retorna o logger do processo; antes de InitLogger é um no-op
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SyncLogger descarrega o buffer do logger
func SyncLogger() {
	_ = Logger().Sync()
}

func parseNivel(nivel string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(nivel)))); err != nil {
		return zapcore.InfoLevel
	}
	return l
}
