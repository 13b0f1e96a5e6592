package panels

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BreadcrumbText returns the label of the current section for a console path such as
// "/user/api-keys". The section is the text after the last slash, so a path ending in a slash
// has no label. Known sections get a fixed label; others are capitalized.
func BreadcrumbText(p string) string {
	section := p[strings.LastIndex(p, "/")+1:]
	if section == "" {
		return ""
	}

	if section == "api-keys" {
		return "API keys"
	}

	first, size := utf8.DecodeRuneInString(section)

	return string(unicode.ToUpper(first)) + strings.ToLower(section[size:])
}
