package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// injectCopyButtons recorre el HTML ya sanitizado y antepone a cada bloque
// <pre> que contenga codigo un boton de copiado con el texto crudo del
// bloque en data-clipboard-text, que es donde el front engancha el handler
// de clipboard.
func injectCopyButtons(rendered string) (string, error) {
	container := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(rendered), container)
	if err != nil {
		return "", err
	}

	for _, n := range nodes {
		container.AppendChild(n)
	}
	walkCodeBlocks(container)

	var b strings.Builder
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// walkCodeBlocks inyecta el boton en cada <pre>; en markdown sanitizado todo
// <pre> es un bloque de codigo, resaltado o no.
func walkCodeBlocks(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Pre {
		n.InsertBefore(newCopyButton(textContent(n)), n.FirstChild)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkCodeBlocks(c)
	}
}

func newCopyButton(code string) *html.Node {
	btn := &html.Node{
		Type:     html.ElementNode,
		Data:     "button",
		DataAtom: atom.Button,
		Attr: []html.Attribute{
			{Key: "class", Val: "copy-button"},
			{Key: "title", Val: "Copy to clipboard"},
			{Key: "data-clipboard-text", Val: code},
		},
	}
	btn.AppendChild(&html.Node{Type: html.TextNode, Data: "copy"})
	return btn
}

// textContent junta el texto plano de un subtree, que para un bloque
// resaltado equivale al codigo original sin los spans de color.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimRight(b.String(), "\n")
}
