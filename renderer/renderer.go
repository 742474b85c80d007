package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates = mustSub(templatesFS, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// StatementRenderOptions holds configuration for rendering a month statement.
type StatementRenderOptions struct {
	SkipActivity bool // Do not render the buy and sell activity section.
	SkipHoldings bool // Do not render the holdings section.
}

// RenderStatement renders the Statement struct to a markdown string.
func RenderStatement(s *Statement, opts StatementRenderOptions) string {
	partials := map[string]string{
		"statement_title":    "statement_title.md",
		"statement_summary":  "statement_summary.md",
		"statement_gains":    "statement_gains.md",
		"statement_symbols":  "statement_symbols.md",
		"statement_warnings": "statement_warnings.md",
	}

	// An empty file name results in an empty template.
	partials["statement_activity"] = "statement_activity.md"
	if opts.SkipActivity {
		partials["statement_activity"] = ""
	}
	partials["statement_holdings"] = "statement_holdings.md"
	if opts.SkipHoldings {
		partials["statement_holdings"] = ""
	}

	return renderTemplate("statement", "statement.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
