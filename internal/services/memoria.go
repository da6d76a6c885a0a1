package services

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/models"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/utils"
)

// RepositorioMemoria implementa RepositorioBens em memória.
// Usado em desenvolvimento (BENS_REPOSITORIO=memoria) e nos testes.
type RepositorioMemoria struct {
	mu   sync.RWMutex
	bens []models.BemPatrimonial
}

// NewRepositorioMemoria cria um repositório vazio
func NewRepositorioMemoria() *RepositorioMemoria {
	return &RepositorioMemoria{}
}

func (r *RepositorioMemoria) ExisteNumeroPatrimonial(_ context.Context, numero string) (bool, error) {
	chave := utils.ChaveNumeroPatrimonial(numero)
	if chave == "" {
		return false, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, bem := range r.bens {
		if utils.ChaveNumeroPatrimonial(bem.NumeroPatrimonial) == chave {
			return true, nil
		}
	}
	return false, nil
}

func (r *RepositorioMemoria) Criar(_ context.Context, bens []models.BemPatrimonial) ([]models.BemPatrimonial, error) {
	criados := make([]models.BemPatrimonial, len(bens))

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, bem := range bens {
		if bem.ID == "" {
			bem.ID = uuid.NewString()
		}
		criados[i] = bem
	}
	r.bens = append(r.bens, criados...)
	return criados, nil
}

func (r *RepositorioMemoria) Obter(_ context.Context, id string) (*models.BemPatrimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, bem := range r.bens {
		if bem.ID == id {
			copia := bem
			return &copia, nil
		}
	}
	return nil, ErrBemNaoEncontrado
}

func (r *RepositorioMemoria) Listar(_ context.Context, filtro FiltroBens) (*models.BemPatrimonialResponse, error) {
	filtro = filtro.Normalizar()

	r.mu.RLock()
	var encontrados []models.BemPatrimonial
	for _, bem := range r.bens {
		if filtro.Status != "" && bem.Status != filtro.Status {
			continue
		}
		if filtro.Origem != "" && bem.Origem != filtro.Origem {
			continue
		}
		if filtro.LoteID != "" && bem.LoteID != filtro.LoteID {
			continue
		}
		encontrados = append(encontrados, bem)
	}
	total := len(r.bens)
	r.mu.RUnlock()

	// Mais recentes primeiro
	sort.SliceStable(encontrados, func(i, j int) bool {
		return encontrados[i].CriadoEm > encontrados[j].CriadoEm
	})

	resposta := &models.BemPatrimonialResponse{
		Found: len(encontrados),
		OutOf: total,
		Page:  filtro.Pagina,
		Bens:  []models.BemPatrimonial{},
	}

	inicio := (filtro.Pagina - 1) * filtro.PorPagina
	if inicio >= len(encontrados) {
		return resposta, nil
	}
	fim := min(inicio+filtro.PorPagina, len(encontrados))
	resposta.Bens = append(resposta.Bens, encontrados[inicio:fim]...)
	return resposta, nil
}

func (r *RepositorioMemoria) Saude(_ context.Context) error {
	return nil
}
