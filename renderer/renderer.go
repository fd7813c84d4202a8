// Package renderer renders level snapshots to markdown strings for the
// terminal client.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/legacyguard"
)

//go:embed templates/*.md
var templates embed.FS

// DepositMarkdown renders the level-1 snapshot.
func DepositMarkdown(s legacyguard.DepositState) string {
	return renderTemplate("deposit", "templates/deposit.md", s)
}

// StockMarkdown renders the level-2 snapshot.
func StockMarkdown(s legacyguard.StockState) string {
	return renderTemplate("stock", "templates/stock.md", s)
}

// PortfolioMarkdown renders the level-3 snapshot.
func PortfolioMarkdown(s legacyguard.PortfolioState) string {
	return renderTemplate("portfolio", "templates/portfolio.md", s)
}

// StateMarkdown renders whichever snapshot the coordinator returned.
func StateMarkdown(state any) string {
	switch s := state.(type) {
	case legacyguard.DepositState:
		return DepositMarkdown(s)
	case legacyguard.StockState:
		return StockMarkdown(s)
	case legacyguard.PortfolioState:
		return PortfolioMarkdown(s)
	}
	return fmt.Sprintf("unknown state %T", state)
}

var funcs = template.FuncMap{
	// percent formats an annual rate like 0.025 as "2.50%".
	"percent": func(rate float64) string { return fmt.Sprintf("%.2f%%", rate*100) },
}

// renderTemplate is a small utility to render one embedded template.
// Template problems render as error strings rather than failing the caller:
// a broken view must not take the game down.
func renderTemplate(templateName, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error rendering template %q: %v", file, err)
	}
	return b.String()
}
