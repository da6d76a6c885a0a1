package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/cadastro"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/config"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/models"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/observability"
	"go.uber.org/zap"
)

var (
	ErrFormularioNaoEncontrado = errors.New("formulário não encontrado ou expirado")
	ErrEnvioEmAndamento        = errors.New("já existe um envio em andamento para este formulário")
	ErrEventoInvalido          = errors.New("evento inválido")
)

// EnvioBloqueado é devolvido quando o portão de validação do formulário recusa o envio.
// Estado traz os banners e destaques resultantes.
type EnvioBloqueado struct {
	Falha  *cadastro.FalhaValidacao
	Estado cadastro.Estado
}

func (e *EnvioBloqueado) Error() string {
	return e.Falha.Error()
}

func (e *EnvioBloqueado) Unwrap() error {
	return e.Falha
}

// SessaoFormulario guarda um formulário aberto e sua trava de envio
type SessaoFormulario struct {
	ID           string
	CriadaEm     time.Time
	AtualizadaEm time.Time

	mu    sync.Mutex
	form  *cadastro.Formulario
	trava *cadastro.TravaEnvio
}

// ResultadoEnvio descreve um envio persistido
type ResultadoEnvio struct {
	LoteID string
	Modo   cadastro.Modo
	Bens   []models.BemPatrimonial
}

// SessaoService mantém os formulários abertos em um cache LRU com expiração por inatividade
type SessaoService struct {
	sessoes        *LRUCache[*SessaoFormulario]
	cadastro       *CadastroService
	intervaloTrava time.Duration
	agora          func() time.Time
}

// NewSessaoService cria o serviço de sessões
func NewSessaoService(cfg config.FormularioConfig, cadastroService *CadastroService) *SessaoService {
	sessoes := NewLRUCache(cfg.MaxSessoes, cfg.TTL, func(id string, sessao *SessaoFormulario) {
		sessao.trava.Liberar()
		observability.Logger().Debug("sessão de formulário encerrada", zap.String("formulario_id", id))
	})

	return &SessaoService{
		sessoes:        sessoes,
		cadastro:       cadastroService,
		intervaloTrava: cfg.TravaEnvio,
		agora:          time.Now,
	}
}

// IniciarLimpeza remove periodicamente as sessões expiradas
func (s *SessaoService) IniciarLimpeza(ctx context.Context, intervalo time.Duration) {
	s.sessoes.StartCleanupRoutine(ctx, intervalo)
}

// Abrir cria uma sessão e executa a carga do formulário
func (s *SessaoService) Abrir(req models.AbrirFormularioRequest) (string, cadastro.Estado) {
	if _, err := cadastro.DecodificarPayloadEstrito(req.PayloadInicial); err != nil {
		observability.Logger().Warn("payload inicial ignorado", zap.Error(err))
	}

	form := cadastro.NovoFormularioBemPatrimonial(cadastro.OpcoesDefinicao{
		Edicao:       req.Edicao,
		CadastroModo: req.CadastroModo,
		Valores:      req.Valores,
	}, req.ForcarMulti, req.PayloadInicial)

	agora := s.agora()
	sessao := &SessaoFormulario{
		ID:           uuid.NewString(),
		CriadaEm:     agora,
		AtualizadaEm: agora,
		form:         form,
		trava:        cadastro.NovaTravaEnvio(s.intervaloTrava),
	}
	s.sessoes.Set(sessao.ID, sessao)

	observability.Logger().Debug("sessão de formulário aberta",
		zap.String("formulario_id", sessao.ID),
		zap.Bool("edicao", req.Edicao),
		zap.Int("linhas", len(form.LinhasModelo())))

	return sessao.ID, form.Estado()
}

// Obter retorna o estado atual do formulário
func (s *SessaoService) Obter(id string) (cadastro.Estado, error) {
	sessao, ok := s.sessoes.Get(id)
	if !ok {
		return cadastro.Estado{}, ErrFormularioNaoEncontrado
	}

	sessao.mu.Lock()
	defer sessao.mu.Unlock()
	return sessao.form.Estado(), nil
}

// Descartar encerra a sessão
func (s *SessaoService) Descartar(id string) error {
	if !s.sessoes.Delete(id) {
		return ErrFormularioNaoEncontrado
	}
	return nil
}

// AplicarEvento repassa uma interação do usuário ao formulário e devolve o novo estado
func (s *SessaoService) AplicarEvento(id string, evento models.EventoRequest) (cadastro.Estado, error) {
	sessao, ok := s.sessoes.Get(id)
	if !ok {
		return cadastro.Estado{}, ErrFormularioNaoEncontrado
	}

	sessao.mu.Lock()
	defer sessao.mu.Unlock()

	if err := aplicar(sessao.form, evento); err != nil {
		return cadastro.Estado{}, err
	}
	sessao.AtualizadaEm = s.agora()
	return sessao.form.Estado(), nil
}

func aplicar(form *cadastro.Formulario, evento models.EventoRequest) error {
	switch evento.Tipo {
	case models.EventoDigitar:
		if evento.Linha > 0 {
			return form.DigitarLinha(evento.Linha, evento.Campo, evento.Valor)
		}
		return form.DigitarCampo(evento.Campo, evento.Valor)
	case models.EventoMarcar:
		if evento.Linha > 0 {
			return form.MarcarLinha(evento.Linha, evento.Campo, evento.Marcado)
		}
		return form.MarcarCampo(evento.Campo, evento.Valor, evento.Marcado)
	case models.EventoAdicionarLinha:
		form.AdicionarLinha()
		return nil
	case models.EventoRemoverLinha:
		return form.RemoverLinha(evento.Linha)
	case models.EventoModo:
		form.SelecionarModo(cadastro.ParseModo(evento.Valor))
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrEventoInvalido, evento.Tipo)
	}
}

// Enviar passa o formulário pelo portão de validação e, se aprovado, grava os bens.
// A trava impede um segundo envio enquanto o primeiro não termina; ela é solta
// quando a gravação falha e a sessão é encerrada quando a gravação dá certo.
func (s *SessaoService) Enviar(ctx context.Context, id, usuario string) (*ResultadoEnvio, error) {
	sessao, ok := s.sessoes.Get(id)
	if !ok {
		return nil, ErrFormularioNaoEncontrado
	}

	sessao.mu.Lock()
	envio, err := sessao.form.Enviar()
	if err != nil {
		var falha *cadastro.FalhaValidacao
		if errors.As(err, &falha) {
			bloqueado := &EnvioBloqueado{Falha: falha, Estado: sessao.form.Estado()}
			sessao.mu.Unlock()
			return nil, bloqueado
		}
		sessao.mu.Unlock()
		return nil, err
	}
	if !sessao.trava.Adquirir() {
		sessao.mu.Unlock()
		return nil, ErrEnvioEmAndamento
	}
	sessao.mu.Unlock()

	bens, err := s.cadastro.Registrar(ctx, envio, usuario)
	if err != nil {
		sessao.trava.Liberar()
		return nil, err
	}

	s.sessoes.Delete(id)

	resultado := &ResultadoEnvio{Modo: envio.Modo, Bens: bens}
	if len(bens) > 0 {
		resultado.LoteID = bens[0].LoteID
	}
	return resultado, nil
}

// Sessoes retorna a quantidade de formulários abertos
func (s *SessaoService) Sessoes() int {
	return s.sessoes.Size()
}
