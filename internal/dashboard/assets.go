package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

//go:embed web/index.html web/app.ts
var webFS embed.FS

func loadAssets() (*template.Template, []byte, error) {
	index, err := template.ParseFS(webFS, "web/index.html")
	if err != nil {
		return nil, nil, fmt.Errorf("parse index template: %w", err)
	}

	src, err := webFS.ReadFile("web/app.ts")
	if err != nil {
		return nil, nil, fmt.Errorf("read dashboard script: %w", err)
	}
	script, err := transpile("app.ts", string(src))
	if err != nil {
		return nil, nil, err
	}
	return index, script, nil
}

// transpile strips TypeScript types and minifies the result for the browser.
func transpile(name, src string) ([]byte, error) {
	result := api.Transform(src, api.TransformOptions{
		Loader:            api.LoaderTS,
		Target:            api.ES2018,
		Sourcefile:        name,
		MinifyWhitespace:  true,
		MinifySyntax:      true,
		MinifyIdentifiers: true,
	})

	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, m := range result.Errors {
			if m.Location != nil {
				msgs = append(msgs, fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text))
			} else {
				msgs = append(msgs, m.Text)
			}
		}
		return nil, fmt.Errorf("transpile %s: %s", name, strings.Join(msgs, "; "))
	}
	return result.Code, nil
}
