// Package markdown derives structural metadata from markdown text.
//
// It fills the upstream-parser role of the chunking engine's optional
// StructureMetadata input: a goldmark AST walk collects heading markers
// with their levels, titles, and byte positions, so the structure-aware
// strategy can segment at real document structure instead of regex guesses.
// No text extraction or rewriting happens here; the document passed to the
// engine stays byte-identical.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"

	"github.com/emeiziying/textchunk"
)

// Scan parses source as markdown and returns heading metadata for the
// chunking engine. Headings are reported in document order with strictly
// increasing byte positions; a document without headings yields
// HasHeadings == false.
func Scan(source string) textchunk.StructureMetadata {
	src := []byte(source)
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(src))

	var headings []textchunk.Heading
	lastPos := -1

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		lines := h.Lines()
		if lines.Len() == 0 {
			return ast.WalkContinue, nil
		}

		// The segment starts at the title text; back up to the start of
		// the line so the position covers the marker itself.
		pos := lines.At(0).Start
		for pos > 0 && src[pos-1] != '\n' {
			pos--
		}
		if pos <= lastPos {
			return ast.WalkContinue, nil
		}
		lastPos = pos

		headings = append(headings, textchunk.Heading{
			Line:     strings.Count(source[:pos], "\n"),
			Level:    h.Level,
			Title:    headingTitle(h, src),
			Position: pos,
		})
		return ast.WalkContinue, nil
	})

	return textchunk.StructureMetadata{
		HasHeadings: len(headings) > 0,
		Headings:    headings,
	}
}

// headingTitle concatenates the heading's text nodes, NFC-normalized so
// titles compare stably regardless of the source's unicode composition.
func headingTitle(h *ast.Heading, src []byte) string {
	var b strings.Builder
	for child := h.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
	}
	return norm.NFC.String(strings.TrimSpace(b.String()))
}
