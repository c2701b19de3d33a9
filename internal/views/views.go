// Package views embeds the HTML templates of the admin pages.
package views

import (
	"embed"
	"html/template"
	"strconv"
)

//go:embed *.tmpl
var files embed.FS

// Templates parses every page; pages are addressed by file name, e.g. "products.tmpl".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(files, "*.tmpl")
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"price": Price,
	}
}

// Price groups thousands with dots: 1250000 -> "1.250.000".
func Price(v int) string {
	s := strconv.Itoa(v)
	neg := false
	if v < 0 {
		neg, s = true, s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3+1)
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// ViewData is the map every page template is executed with.
type ViewData map[string]any
