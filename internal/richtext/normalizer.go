// Package richtext converts heterogeneous stored note content into the
// structured markup consumed by the editing surface.
package richtext

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// EmptyParagraph is the normalized form of empty or absent content.
const EmptyParagraph = "<p></p>"

// markdownSignals is the character set whose presence routes content through
// the markdown parser. Plain text carrying stray signal punctuation (say, a
// sentence with an asterisk) is mis-routed through markdown parsing; that
// ambiguity is inherited from the stored data, which carries no encoding tag.
const markdownSignals = "*_#`[]"

var htmlTagRe = regexp.MustCompile(`<[a-zA-Z][^>]*>`)

// Normalizer produces structured markup from stored content. It is stateless
// apart from the markdown engine, so one instance can be shared across
// requests without locking.
type Normalizer struct {
	md goldmark.Markdown
}

// NewNormalizer builds a normalizer with a GFM-configured markdown engine
// (tables, strikethrough, task lists, autolinks; raw HTML passed through).
func NewNormalizer() *Normalizer {
	return &Normalizer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
				extension.TaskList,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Normalize applies the decision policy in order:
//
//  1. empty input → a single empty paragraph
//  2. an HTML start tag present → returned unchanged (already structured)
//  3. no markdown signal characters → wrapped verbatim in a paragraph
//  4. otherwise parsed as markdown; a parse failure falls back to the
//     paragraph wrap and is never surfaced
//
// The result always contains markup, so re-applying Normalize to its own
// output returns it unchanged.
func (n *Normalizer) Normalize(content string) string {
	if strings.TrimSpace(content) == "" {
		return EmptyParagraph
	}
	if htmlTagRe.MatchString(content) {
		return content
	}
	if !strings.ContainsAny(content, markdownSignals) {
		return wrapParagraph(content)
	}

	var buf bytes.Buffer
	if err := n.md.Convert([]byte(content), &buf); err != nil {
		return wrapParagraph(content)
	}
	return buf.String()
}

func wrapParagraph(content string) string {
	return "<p>" + content + "</p>"
}
