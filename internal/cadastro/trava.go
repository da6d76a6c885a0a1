package cadastro

import (
	"sync"
	"time"
)

// IntervaloTravaEnvio é o tempo após o qual a trava se libera sozinha
const IntervaloTravaEnvio = 15 * time.Second

// TravaEnvio impede envios repetidos em sequência. A trava se solta sozinha após o
// intervalo, para o formulário voltar a ser enviável se a navegação não acontecer.
type TravaEnvio struct {
	mu        sync.Mutex
	intervalo time.Duration
	travada   bool
	geracao   uint64
	timer     *time.Timer
}

// NovaTravaEnvio cria a trava; intervalo <= 0 usa IntervaloTravaEnvio
func NovaTravaEnvio(intervalo time.Duration) *TravaEnvio {
	if intervalo <= 0 {
		intervalo = IntervaloTravaEnvio
	}
	return &TravaEnvio{intervalo: intervalo}
}

// Adquirir trava o envio. Retorna false se já havia um envio em andamento.
func (t *TravaEnvio) Adquirir() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.travada {
		return false
	}
	t.travada = true
	t.geracao++
	geracao := t.geracao
	t.timer = time.AfterFunc(t.intervalo, func() { t.expirar(geracao) })
	return true
}

// expirar solta a trava apenas se ela ainda for da mesma aquisição
func (t *TravaEnvio) expirar(geracao uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.geracao == geracao {
		t.travada = false
		t.timer = nil
	}
}

// Liberar solta a trava
func (t *TravaEnvio) Liberar() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.travada = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Travada informa se há um envio em andamento
func (t *TravaEnvio) Travada() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.travada
}
