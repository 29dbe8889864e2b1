// Package web holds the HTML templates and static assets compiled into the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Funcs are the helpers every template can call. Times are shown in loc.
func Funcs(loc *time.Location) template.FuncMap {
	in := func(t time.Time) time.Time {
		if loc == nil {
			return t
		}
		return t.In(loc)
	}

	return template.FuncMap{
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return in(t).Format("Jan 2, 2006")
		},
		"datetime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return in(t).Format("Jan 2, 2006 15:04")
		},
		"datetimeLocal": func(t time.Time) string {
			return in(t).Format("2006-01-02T15:04")
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
	}
}

func Templates(loc *time.Location) (*template.Template, error) {
	return template.New("").Funcs(Funcs(loc)).ParseFS(templateFS, "templates/*.html")
}
