package pages

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
	sanitizer = bluemonday.UGCPolicy().
			AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6").
			AllowAttrs("dir").Globally()
)

// TOCEntry is one heading of a rendered page, for the side navigation.
type TOCEntry struct {
	ID    string
	Title string
	Level int
}

// Rendered is a page body converted to safe HTML plus its heading outline.
type Rendered struct {
	HTML template.HTML
	TOC  []TOCEntry
}

// Render converts markdown to sanitized HTML and extracts h2/h3 headings.
func Render(body string) (Rendered, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return Rendered{}, err
	}
	clean := sanitizer.SanitizeBytes(buf.Bytes())
	toc, err := extractTOC(clean)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{HTML: template.HTML(clean), TOC: toc}, nil
}

func extractTOC(doc []byte) ([]TOCEntry, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, err
	}
	var toc []TOCEntry
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			level := headingLevel(n.Data)
			if level == 2 || level == 3 {
				entry := TOCEntry{Level: level, Title: strings.TrimSpace(textOf(n))}
				for _, attr := range n.Attr {
					if attr.Key == "id" {
						entry.ID = attr.Val
					}
				}
				if entry.Title != "" {
					toc = append(toc, entry)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return toc, nil
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func textOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textOf(c))
	}
	return sb.String()
}
