package models

import "github.com/prefeitura-rio/app-bens-fisicos/internal/cadastro"

// Tipos de evento aceitos por uma sessão de formulário
const (
	EventoDigitar        = "digitar"
	EventoMarcar         = "marcar"
	EventoAdicionarLinha = "adicionar_linha"
	EventoRemoverLinha   = "remover_linha"
	EventoModo           = "modo"
)

// AbrirFormularioRequest abre uma sessão de cadastro de bem patrimonial
type AbrirFormularioRequest struct {
	Edicao         bool              `json:"edicao"`
	ForcarMulti    bool              `json:"forcar_multi"`
	PayloadInicial string            `json:"payload_inicial,omitempty" validate:"max=200000"`
	CadastroModo   string            `json:"cadastro_modo,omitempty" validate:"omitempty,oneof=unico multi"`
	Valores        map[string]string `json:"valores,omitempty" validate:"max=64,dive,keys,max=64,endkeys,max=20000"`
}

// EventoRequest é uma interação do usuário com o formulário.
// Linha é a posição exibida (base um); zero indica um campo do formulário hospedeiro.
type EventoRequest struct {
	Tipo    string `json:"tipo" validate:"required,oneof=digitar marcar adicionar_linha remover_linha modo"`
	Linha   int    `json:"linha,omitempty" validate:"min=0"`
	Campo   string `json:"campo,omitempty" validate:"required_if=Tipo digitar,required_if=Tipo marcar,max=64"`
	Valor   string `json:"valor,omitempty" validate:"max=20000"`
	Marcado bool   `json:"marcado,omitempty"`
}

// FormularioResponse é o estado de uma sessão de formulário
type FormularioResponse struct {
	ID     string          `json:"id"`
	Estado cadastro.Estado `json:"estado"`
}

// EnvioInvalidoResponse é devolvido quando o portão de validação bloqueia o envio
type EnvioInvalidoResponse struct {
	Error  string                   `json:"error"`
	Modo   cadastro.Modo            `json:"modo"`
	Erros  []cadastro.ErroValidacao `json:"erros"`
	Estado cadastro.Estado          `json:"estado"`
}

// EnvioResponse lista os bens criados por um envio aceito
type EnvioResponse struct {
	LoteID string           `json:"lote_id"`
	Modo   cadastro.Modo    `json:"modo"`
	Bens   []BemPatrimonial `json:"bens"`
}

// HorariosResponse lista os horários disponíveis de uma data
type HorariosResponse struct {
	Data     string   `json:"data"`
	Horarios []string `json:"horarios"`
}
