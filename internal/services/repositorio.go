package services

import (
	"context"
	"errors"

	"github.com/prefeitura-rio/app-bens-fisicos/internal/models"
)

// ErrBemNaoEncontrado indica um bem inexistente no repositório
var ErrBemNaoEncontrado = errors.New("bem patrimonial não encontrado")

// FiltroBens restringe a listagem de bens
type FiltroBens struct {
	Pagina    int
	PorPagina int
	Status    string
	Origem    string
	LoteID    string
}

// Normalizar aplica os limites de paginação
func (f FiltroBens) Normalizar() FiltroBens {
	if f.Pagina < 1 {
		f.Pagina = 1
	}
	if f.PorPagina < 1 || f.PorPagina > 100 {
		f.PorPagina = 10
	}
	return f
}

// RepositorioBens persiste os bens cadastrados
type RepositorioBens interface {
	// ExisteNumeroPatrimonial informa se o número já pertence a algum bem
	ExisteNumeroPatrimonial(ctx context.Context, numero string) (bool, error)
	// Criar grava os bens de um envio; todos recebem ID
	Criar(ctx context.Context, bens []models.BemPatrimonial) ([]models.BemPatrimonial, error)
	Obter(ctx context.Context, id string) (*models.BemPatrimonial, error)
	Listar(ctx context.Context, filtro FiltroBens) (*models.BemPatrimonialResponse, error)
	// Saude verifica a disponibilidade do armazenamento
	Saude(ctx context.Context) error
}
