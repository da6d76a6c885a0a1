package cadastro

import "strings"

// Modo define qual fonte de dados é enviada: campos nativos ou lista de linhas
type Modo string

const (
	ModoUnico Modo = "unico"
	ModoMulti Modo = "multi"
)

// ParseModo aceita "unico"/"single" e "multi"/"multiple"; qualquer outro valor é único
func ParseModo(valor string) Modo {
	switch strings.ToLower(strings.TrimSpace(valor)) {
	case "multi", "multiple", "multiplo", "múltiplo":
		return ModoMulti
	default:
		return ModoUnico
	}
}

// SeletorModo alterna o formulário entre cadastro único e múltiplo
type SeletorModo struct {
	ctx   *Contexto
	atual Modo
}

// NovoSeletorModo cria o seletor no modo único
func NovoSeletorModo(ctx *Contexto) *SeletorModo {
	return &SeletorModo{ctx: ctx, atual: ModoUnico}
}

// Atual retorna o modo exibido
func (s *SeletorModo) Atual() Modo {
	return s.atual
}

// Restaurar define o modo inicial: a marcação forçada prevalece sobre o rádio marcado
func (s *SeletorModo) Restaurar() {
	if s.ctx.ForcarMulti {
		s.Selecionar(ModoMulti)
		return
	}
	s.Selecionar(s.modoMarcado())
}

// Selecionar exibe o bloco do modo escolhido e oculta o outro
func (s *SeletorModo) Selecionar(modo Modo) {
	s.atual = modo
	for _, radio := range s.ctx.RadiosModo {
		radio.Marcado = ParseModo(radio.Valor) == modo
	}

	multi := modo == ModoMulti
	s.ctx.Multi.Visivel = multi
	for _, linha := range s.ctx.linhasUnico() {
		linha.Oculta = multi
	}
}

// Resolver calcula o modo do envio sem depender do que está visível:
// havendo linhas ou com o rádio "multi" marcado, o envio é múltiplo
func (s *SeletorModo) Resolver(quantidadeLinhas int) Modo {
	if quantidadeLinhas > 0 || s.radioMultiMarcado() {
		return ModoMulti
	}
	return s.modoMarcado()
}

// modoMarcado lê o rádio marcado; sem rádios (edição), vale o modo selecionado
func (s *SeletorModo) modoMarcado() Modo {
	if len(s.ctx.RadiosModo) == 0 {
		return s.atual
	}
	for _, radio := range s.ctx.RadiosModo {
		if radio.Marcado {
			return ParseModo(radio.Valor)
		}
	}
	return ModoUnico
}

func (s *SeletorModo) radioMultiMarcado() bool {
	return s.modoMarcado() == ModoMulti
}
