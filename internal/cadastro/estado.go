package cadastro

import "github.com/prefeitura-rio/app-bens-fisicos/internal/utils"

// Estado é uma cópia do formulário para exibição, desacoplada do controlador
type Estado struct {
	Modo            Modo              `json:"modo"`
	Edicao          bool              `json:"edicao"`
	NumeracaoNativa string            `json:"numeracao_nativa"`
	Linhas          []LinhaFormulario `json:"linhas"`
	Multi           EstadoMulti       `json:"multi"`
	ErrosBase       Banner            `json:"erros_base"`
	ErrosMulti      Banner            `json:"erros_multi"`
	MultiPayload    string            `json:"multi_payload"`
	CadastroModo    string            `json:"cadastro_modo,omitempty"`
}

// EstadoMulti é a cópia do bloco de múltiplos bens
type EstadoMulti struct {
	Visivel bool          `json:"visivel"`
	Linhas  []EstadoLinha `json:"linhas"`
}

// EstadoLinha é a cópia de uma linha do modo múltiplo
type EstadoLinha struct {
	Indice        int    `json:"indice"`
	Numeracao     string `json:"numeracao"`
	Numero        Campo  `json:"numero_patrimonial"`
	FormatoAntigo Campo  `json:"numero_formato_antigo"`
	SemNumeracao  Campo  `json:"sem_numeracao"`
	Localizacao   Campo  `json:"localizacao"`
}

// Estado copia o estado atual do formulário
func (f *Formulario) Estado() Estado {
	estado := Estado{
		Modo:            f.seletor.Atual(),
		Edicao:          f.ctx.Edicao,
		NumeracaoNativa: f.NumeracaoNativa().String(),
		Linhas:          make([]LinhaFormulario, 0, len(f.ctx.Linhas)),
		Multi: EstadoMulti{
			Visivel: f.ctx.Multi.Visivel,
			Linhas:  make([]EstadoLinha, 0, len(f.ctx.Multi.Linhas)),
		},
		ErrosBase:    copiarBanner(f.ctx.ErrosBase),
		ErrosMulti:   copiarBanner(f.ctx.ErrosMulti),
		MultiPayload: f.ctx.PayloadOculto.Valor,
		CadastroModo: f.ctx.ModoOculto.Valor,
	}

	for _, linha := range f.ctx.Linhas {
		copia := *linha
		copia.Ajuda = utils.TextoSemMarcacao(linha.Ajuda)
		copia.Campos = make([]*Campo, len(linha.Campos))
		for i, campo := range linha.Campos {
			copia.Campos[i] = copiarCampo(campo)
		}
		estado.Linhas = append(estado.Linhas, copia)
	}

	for _, v := range f.ctx.Multi.Linhas {
		estado.Multi.Linhas = append(estado.Multi.Linhas, EstadoLinha{
			Indice:        v.Indice,
			Numeracao:     v.ModoNumeracao().String(),
			Numero:        *copiarCampo(v.Numero),
			FormatoAntigo: *copiarCampo(v.FormatoAntigo),
			SemNumeracao:  *copiarCampo(v.SemNumeracao),
			Localizacao:   *copiarCampo(v.Localizacao),
		})
	}

	return estado
}

func copiarCampo(campo *Campo) *Campo {
	copia := *campo
	copia.Opcoes = append([]string(nil), campo.Opcoes...)
	return &copia
}

func copiarBanner(b *Banner) Banner {
	return Banner{
		Visivel:   b.Visivel,
		Mensagens: append([]string(nil), b.Mensagens...),
		RolarAte:  b.RolarAte,
	}
}
