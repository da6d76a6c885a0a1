package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// TextoSemMarcacao remove a formatação markdown de rótulos e textos de ajuda.
// Parágrafos viram uma única linha separada por espaço.
// Exemplo: "Selecione o modo **antes**" -> "Selecione o modo antes"
func TextoSemMarcacao(texto string) string {
	if strings.TrimSpace(texto) == "" {
		return ""
	}

	doc := markdown.Parse([]byte(texto), nil)

	var buf bytes.Buffer
	extrairTexto(doc, &buf)

	return strings.Join(strings.Fields(buf.String()), " ")
}

// TextosSemMarcacao aplica TextoSemMarcacao a cada item
func TextosSemMarcacao(textos []string) []string {
	if textos == nil {
		return nil
	}

	resultado := make([]string, len(textos))
	for i, texto := range textos {
		resultado[i] = TextoSemMarcacao(texto)
	}
	return resultado
}

// extrairTexto percorre a AST e acumula apenas o conteúdo textual
func extrairTexto(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return
	case *ast.Code:
		buf.Write(n.Literal)
		return
	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return
	case *ast.Hardbreak, *ast.Softbreak:
		buf.WriteString(" ")
		return
	case *ast.HTMLBlock, *ast.HTMLSpan:
		// HTML embutido não aparece no rótulo
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	for _, child := range container.Children {
		extrairTexto(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.ListItem:
		buf.WriteString(" ")
	}
}
