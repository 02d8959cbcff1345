package lint

// keywords is the full JSON-LD 1.1 keyword set.
var keywords = map[string]bool{
	"@base":      true,
	"@container": true,
	"@context":   true,
	"@default":   true,
	"@direction": true,
	"@graph":     true,
	"@id":        true,
	"@import":    true,
	"@included":  true,
	"@index":     true,
	"@json":      true,
	"@language":  true,
	"@list":      true,
	"@nest":      true,
	"@none":      true,
	"@prefix":    true,
	"@propagate": true,
	"@protected": true,
	"@reverse":   true,
	"@set":       true,
	"@type":      true,
	"@value":     true,
	"@version":   true,
	"@vocab":     true,
}

// containerValues are the strings valid inside @container.
var containerValues = map[string]bool{
	"@graph":    true,
	"@id":       true,
	"@index":    true,
	"@language": true,
	"@list":     true,
	"@set":      true,
	"@type":     true,
}

// isKeyword reports whether s is a known JSON-LD keyword.
func isKeyword(s string) bool {
	return keywords[s]
}

// looksLikeKeyword reports whether s has the general shape of a JSON-LD
// keyword: an @ followed by one or more ASCII letters. Processors treat
// unknown keys of this shape as keywords and silently ignore them, which
// is why using one for data is always a mistake.
func looksLikeKeyword(s string) bool {
	if len(s) < 2 || s[0] != '@' {
		return false
	}
	for _, char := range s[1:] {
		if (char < 'a' || char > 'z') && (char < 'A' || char > 'Z') {
			return false
		}
	}
	return true
}
