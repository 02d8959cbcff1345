package input

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ExtractScripts parses an HTML document and returns the text content of
// every <script type="application/ld+json"> element, in document order.
//
// The HTML spec allows any number of JSON-LD script blocks per page; the
// JSON-LD API treats them as one document whose top level is the array of
// all blocks. That merge happens in decodeHTML, not here.
func ExtractScripts(data []byte) ([][]byte, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse HTML input")
	}

	var scripts [][]byte
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" && isJSONLDScript(n) {
			var buf bytes.Buffer
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					buf.WriteString(c.Data)
				}
			}
			scripts = append(scripts, buf.Bytes())
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if len(scripts) == 0 {
		return nil, errors.New("no script elements of type application/ld+json found in HTML input")
	}
	return scripts, nil
}

// isJSONLDScript reports whether the script element declares the
// application/ld+json media type, ignoring parameters such as charset.
func isJSONLDScript(n *html.Node) bool {
	for _, attr := range n.Attr {
		if attr.Key != "type" {
			continue
		}
		mediaType := strings.TrimSpace(strings.ToLower(attr.Val))
		if i := strings.IndexByte(mediaType, ';'); i >= 0 {
			mediaType = strings.TrimSpace(mediaType[:i])
		}
		return mediaType == "application/ld+json"
	}
	return false
}
