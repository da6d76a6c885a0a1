package models

// BemPatrimonial representa um bem físico cadastrado
type BemPatrimonial struct {
	ID                    string `json:"id,omitempty" typesense:"id,optional"`
	LoteID                string `json:"lote_id" validate:"required" typesense:"lote_id"`
	Nome                  string `json:"nome" validate:"required,max=255" typesense:"nome"`
	Descricao             string `json:"descricao" validate:"required,max=20000" typesense:"descricao"`
	Quantidade            int32  `json:"quantidade" validate:"required,min=1" typesense:"quantidade"`
	ValorUnitarioCentavos int64  `json:"valor_unitario_centavos" validate:"min=0" typesense:"valor_unitario_centavos"`
	Marca                 string `json:"marca" validate:"required,max=255" typesense:"marca"`
	Modelo                string `json:"modelo" validate:"required,max=255" typesense:"modelo"`
	DataCompraEntrega     string `json:"data_compra_entrega" validate:"required,datetime=2006-01-02" typesense:"data_compra_entrega"`
	Origem                string `json:"origem" validate:"required,oneof=repasse_de_verba aquisicao_direta transferencia movimentacao" typesense:"origem"`
	NumeroProcesso        string `json:"numero_processo" validate:"required,max=255" typesense:"numero_processo"`
	AutorizacaoNoDocEm    string `json:"autorizacao_no_doc_em,omitempty" validate:"omitempty,datetime=2006-01-02" typesense:"autorizacao_no_doc_em,optional"`
	NumeroNIBPM           string `json:"numero_nibpm,omitempty" validate:"max=255" typesense:"numero_nibpm,optional"`
	NumeroCIMBPM          string `json:"numero_cimbpm,omitempty" validate:"max=255" typesense:"numero_cimbpm,optional"`
	NumeroPatrimonial     string `json:"numero_patrimonial,omitempty" validate:"max=255" typesense:"numero_patrimonial,optional"`
	NumeroFormatoAntigo   bool   `json:"numero_formato_antigo" typesense:"numero_formato_antigo"`
	SemNumeracao          bool   `json:"sem_numeracao" typesense:"sem_numeracao"`
	Localizacao           string `json:"localizacao,omitempty" validate:"max=255" typesense:"localizacao,optional"`
	NumeroSerie           string `json:"numero_serie,omitempty" validate:"max=255" typesense:"numero_serie,optional"`
	Status                string `json:"status" validate:"required,oneof=aguardando_aprovacao aprovado nao_aprovado bloqueado" typesense:"status"`
	CriadoEm              int64  `json:"criado_em" typesense:"criado_em"`
	CriadoPor             string `json:"criado_por,omitempty" validate:"max=255" typesense:"criado_por,optional"`
}

// BemPatrimonialResponse representa a listagem de bens cadastrados
type BemPatrimonialResponse struct {
	Found int              `json:"found"`
	OutOf int              `json:"out_of"`
	Page  int              `json:"page"`
	Bens  []BemPatrimonial `json:"bens"`
}
