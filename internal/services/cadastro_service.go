package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/cadastro"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/models"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/observability"
	"github.com/prefeitura-rio/app-bens-fisicos/internal/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var (
	// ErrNumeroDuplicado indica um número patrimonial que já pertence a outro bem
	ErrNumeroDuplicado = errors.New("Não foi possível salvar. O Número Patrimonial já está cadastrado no sistema.")

	// ErrRegistroInvalido indica um envio rejeitado pela validação do servidor
	ErrRegistroInvalido = errors.New("dados do bem patrimonial inválidos")
)

const (
	tagNumeracaoExclusiva = "numeracao_exclusiva"
	tagNumeroObrigatorio  = "numero_obrigatorio"
	tagNumeroEstruturado  = "numero_estruturado"
)

var origensValidas = []string{
	cadastro.OrigemRepasse,
	cadastro.OrigemAquisicao,
	cadastro.OrigemTransferencia,
	cadastro.OrigemMovimentacao,
}

// ErroRegistro é uma falha de validação do servidor. Linha é zero no cadastro único.
type ErroRegistro struct {
	Linha    int    `json:"linha,omitempty"`
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// FalhaRegistro agrega os erros de validação de um envio
type FalhaRegistro struct {
	Erros []ErroRegistro
}

func (f *FalhaRegistro) Error() string {
	mensagens := make([]string, len(f.Erros))
	for i, e := range f.Erros {
		mensagens[i] = e.Mensagem
	}
	return fmt.Sprintf("%s: %s", ErrRegistroInvalido, strings.Join(mensagens, " "))
}

func (f *FalhaRegistro) Unwrap() error {
	return ErrRegistroInvalido
}

// CadastroService transforma um envio aprovado pelo formulário em bens patrimoniais
type CadastroService struct {
	repositorio RepositorioBens
	validator   *validator.Validate
	agora       func() time.Time
}

// NewCadastroService cria o serviço sobre o repositório informado
func NewCadastroService(repositorio RepositorioBens) *CadastroService {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		nome := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if nome == "-" {
			return ""
		}
		return nome
	})
	v.RegisterStructValidation(validarNumeracao, models.BemPatrimonial{})

	return &CadastroService{
		repositorio: repositorio,
		validator:   v,
		agora:       time.Now,
	}
}

// Registrar valida o envio e grava um bem por linha (modo múltiplo) ou um único bem
// com os campos nativos. Todos os bens do envio compartilham o mesmo lote.
func (s *CadastroService) Registrar(ctx context.Context, envio *cadastro.Envio, usuario string) ([]models.BemPatrimonial, error) {
	ctx, span := observability.Tracer("cadastro").Start(ctx, "CadastroService.Registrar")
	defer span.End()
	span.SetAttributes(attribute.String("cadastro.modo", string(envio.Modo)))

	base, erros := s.montarBase(envio.Campos)
	base.LoteID = uuid.NewString()
	base.CriadoEm = s.agora().Unix()
	base.CriadoPor = usuario

	var bens []models.BemPatrimonial
	switch envio.Modo {
	case cadastro.ModoMulti:
		linhas, err := cadastro.DecodificarPayloadEstrito(envio.Payload)
		if err != nil {
			erros = append(erros, ErroRegistro{Campo: cadastro.CampoMultiPayload, Mensagem: "A lista de bens enviada é inválida."})
			break
		}
		if len(linhas) == 0 {
			erros = append(erros, ErroRegistro{Campo: cadastro.CampoMultiPayload, Mensagem: "Adicione ao menos uma linha no modo Múltiplos Bens."})
			break
		}
		for _, linha := range linhas {
			bem := base
			bem.Quantidade = 1
			bem.NumeroPatrimonial = strings.TrimSpace(linha.NumeroPatrimonial)
			bem.NumeroFormatoAntigo = linha.FormatoAntigo
			bem.SemNumeracao = linha.SemNumeracao
			bem.Localizacao = strings.TrimSpace(linha.Localizacao)
			bens = append(bens, bem)
		}
	default:
		bem := base
		bem.NumeroPatrimonial = strings.TrimSpace(envio.Campos[cadastro.CampoNumeroPatrimonial])
		bem.NumeroFormatoAntigo = envio.Campos[cadastro.CampoFormatoAntigo] != ""
		bem.SemNumeracao = envio.Campos[cadastro.CampoSemNumeracao] != ""
		bem.Localizacao = strings.TrimSpace(envio.Campos[cadastro.CampoLocalizacao])
		bens = append(bens, bem)
	}

	// campos já rejeitados na leitura não repetem o erro do validator
	jaInvalidos := mapset.NewThreadUnsafeSet[string]()
	for _, e := range erros {
		jaInvalidos.Add(e.Campo)
	}

	multi := envio.Modo == cadastro.ModoMulti
	for i := range bens {
		linha := 0
		if multi {
			linha = i + 1
		}
		for _, e := range s.validar(bens[i], linha) {
			if !jaInvalidos.Contains(e.Campo) {
				erros = append(erros, e)
			}
		}
		normalizarNumeracao(&bens[i])
	}
	erros = append(erros, numerosRepetidos(bens, multi)...)

	if len(erros) > 0 {
		falha := &FalhaRegistro{Erros: deduplicar(erros)}
		span.SetStatus(codes.Error, "validação do servidor falhou")
		observability.Logger().Info("envio rejeitado pela validação do servidor",
			zap.String("modo", string(envio.Modo)),
			zap.Int("erros", len(falha.Erros)))
		return nil, falha
	}

	for i, bem := range bens {
		if bem.NumeroPatrimonial == "" {
			continue
		}
		existe, err := s.repositorio.ExisteNumeroPatrimonial(ctx, bem.NumeroPatrimonial)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("erro ao verificar número patrimonial: %w", err)
		}
		if existe {
			span.SetStatus(codes.Error, "número patrimonial duplicado")
			observability.Logger().Info("número patrimonial já cadastrado",
				zap.String("numero_patrimonial", bem.NumeroPatrimonial),
				zap.Int("linha", i+1))
			return nil, fmt.Errorf("%w (%s)", ErrNumeroDuplicado, bem.NumeroPatrimonial)
		}
	}

	criados, err := s.repositorio.Criar(ctx, bens)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("erro ao gravar bens patrimoniais: %w", err)
	}

	span.SetAttributes(attribute.Int("cadastro.bens", len(criados)), attribute.String("cadastro.lote_id", base.LoteID))
	observability.Logger().Info("bens patrimoniais cadastrados",
		zap.String("lote_id", base.LoteID),
		zap.String("modo", string(envio.Modo)),
		zap.Int("quantidade", len(criados)),
		zap.String("criado_por", usuario))

	return criados, nil
}

// montarBase lê os campos comuns a todos os bens do envio
func (s *CadastroService) montarBase(campos map[string]string) (models.BemPatrimonial, []ErroRegistro) {
	var erros []ErroRegistro
	texto := func(nome string) string {
		return strings.TrimSpace(campos[nome])
	}

	bem := models.BemPatrimonial{
		Nome:           texto("nome"),
		Descricao:      texto("descricao"),
		Marca:          texto("marca"),
		Modelo:         texto("modelo"),
		NumeroProcesso: texto("numero_processo"),
		NumeroNIBPM:    texto("numero_nibpm"),
		NumeroCIMBPM:   texto("numero_cimbpm"),
		NumeroSerie:    texto("numero_serie"),
		Origem:         utils.DesnormalizarTexto(texto("origem"), origensValidas),
		Status:         cadastro.StatusAguardandoAprovacao,
	}

	if quantidade := texto("quantidade"); quantidade != "" {
		n, err := strconv.ParseInt(quantidade, 10, 32)
		if err != nil || n < 1 {
			erros = append(erros, ErroRegistro{Campo: "quantidade", Mensagem: "Informe uma quantidade inteira maior que zero."})
		} else {
			bem.Quantidade = int32(n)
		}
	}

	if valor := texto(cadastro.CampoValorUnitario); valor != "" {
		// negativos caem no mesmo erro de formato
		centavos, err := cadastro.CentavosDeValorMonetario(valor)
		if err != nil {
			erros = append(erros, ErroRegistro{Campo: cadastro.CampoValorUnitario, Mensagem: "Valor inválido. Use o formato 0,00 ou 0.000,00."})
		} else {
			bem.ValorUnitarioCentavos = centavos
		}
	} else {
		erros = append(erros, ErroRegistro{Campo: cadastro.CampoValorUnitario, Mensagem: "Informe o valor unitário (obrigatório)."})
	}

	for _, campo := range []struct {
		nome    string
		destino *string
	}{
		{"data_compra_entrega", &bem.DataCompraEntrega},
		{"autorizacao_no_doc_em", &bem.AutorizacaoNoDocEm},
	} {
		data, err := ParseData(texto(campo.nome))
		if err != nil {
			erros = append(erros, ErroRegistro{Campo: campo.nome, Mensagem: fmt.Sprintf("Data inválida em %s. Use dd/mm/aaaa.", cadastro.RotuloCampo(campo.nome))})
			continue
		}
		*campo.destino = data
	}

	return bem, erros
}

// ParseData aceita dd/mm/aaaa ou aaaa-mm-dd e devolve aaaa-mm-dd. Texto vazio devolve vazio.
func ParseData(valor string) (string, error) {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return "", nil
	}
	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, valor); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("data inválida: %q", valor)
}

func (s *CadastroService) validar(bem models.BemPatrimonial, linha int) []ErroRegistro {
	err := s.validator.Struct(bem)
	if err == nil {
		return nil
	}

	var validacao validator.ValidationErrors
	if !errors.As(err, &validacao) {
		return []ErroRegistro{{Linha: linha, Mensagem: err.Error()}}
	}

	erros := make([]ErroRegistro, 0, len(validacao))
	for _, fe := range validacao {
		// campos comuns valem para o envio inteiro, sem índice de linha
		indice := 0
		if camposDaLinha[fe.Field()] {
			indice = linha
		}
		erros = append(erros, ErroRegistro{
			Linha:    indice,
			Campo:    fe.Field(),
			Mensagem: prefixoLinha(indice) + mensagemValidacao(fe),
		})
	}
	return erros
}

var camposDaLinha = map[string]bool{
	cadastro.CampoNumeroPatrimonial: true,
	cadastro.CampoFormatoAntigo:     true,
	cadastro.CampoSemNumeracao:      true,
	cadastro.CampoLocalizacao:       true,
}

func mensagemValidacao(fe validator.FieldError) string {
	switch fe.Tag() {
	case tagNumeracaoExclusiva:
		return "Selecione 'Formato antigo' OU 'Sem numeração', não ambos."
	case tagNumeroObrigatorio:
		return "Informe o Número Patrimonial ou marque 'Sem numeração'."
	case tagNumeroEstruturado:
		return "O Número Patrimonial deve seguir o formato " + cadastro.PlaceholderEstruturado + "."
	case "required":
		return fmt.Sprintf("Preencha o campo obrigatório: %s.", cadastro.RotuloCampo(fe.Field()))
	case "oneof":
		return fmt.Sprintf("Opção inválida para %s.", cadastro.RotuloCampo(fe.Field()))
	default:
		return fmt.Sprintf("Valor inválido para %s.", cadastro.RotuloCampo(fe.Field()))
	}
}

// validarNumeracao aplica as regras de numeração que dependem de mais de um campo
func validarNumeracao(sl validator.StructLevel) {
	bem := sl.Current().Interface().(models.BemPatrimonial)

	if bem.SemNumeracao && bem.NumeroFormatoAntigo {
		sl.ReportError(bem.SemNumeracao, cadastro.CampoSemNumeracao, "SemNumeracao", tagNumeracaoExclusiva, "")
		return
	}
	if bem.SemNumeracao {
		return
	}
	if bem.NumeroPatrimonial == "" {
		sl.ReportError(bem.NumeroPatrimonial, cadastro.CampoNumeroPatrimonial, "NumeroPatrimonial", tagNumeroObrigatorio, "")
		return
	}
	if !bem.NumeroFormatoAntigo && !cadastro.NumeroPatrimonialValido(bem.NumeroPatrimonial) {
		sl.ReportError(bem.NumeroPatrimonial, cadastro.CampoNumeroPatrimonial, "NumeroPatrimonial", tagNumeroEstruturado, "")
	}
}

// normalizarNumeracao: sem numeração não guarda número nem formato antigo
func normalizarNumeracao(bem *models.BemPatrimonial) {
	if bem.SemNumeracao {
		bem.NumeroPatrimonial = ""
		bem.NumeroFormatoAntigo = false
	}
}

// numerosRepetidos acusa o mesmo número em mais de um bem do envio, sem diferenciar
// acentos nem maiúsculas
func numerosRepetidos(bens []models.BemPatrimonial, multi bool) []ErroRegistro {
	vistos := mapset.NewThreadUnsafeSet[string]()
	var erros []ErroRegistro
	for i, bem := range bens {
		chave := utils.ChaveNumeroPatrimonial(bem.NumeroPatrimonial)
		if chave == "" {
			continue
		}
		if !vistos.Add(chave) {
			linha := 0
			if multi {
				linha = i + 1
			}
			erros = append(erros, ErroRegistro{
				Linha:    linha,
				Campo:    cadastro.CampoNumeroPatrimonial,
				Mensagem: prefixoLinha(linha) + "Número Patrimonial repetido neste envio.",
			})
		}
	}
	return erros
}

// deduplicar remove mensagens iguais, que aparecem quando todos os bens herdam o mesmo campo inválido
func deduplicar(erros []ErroRegistro) []ErroRegistro {
	vistos := mapset.NewThreadUnsafeSet[string]()
	resultado := make([]ErroRegistro, 0, len(erros))
	for _, e := range erros {
		if vistos.Add(e.Campo + "\x00" + e.Mensagem) {
			resultado = append(resultado, e)
		}
	}
	return resultado
}

func prefixoLinha(linha int) string {
	if linha == 0 {
		return ""
	}
	return fmt.Sprintf("Linha %d: ", linha)
}
