package services

import (
	"fmt"
	"html"
	"strings"

	"resume-screener/internal/models"
)

// ResolvePath looks up the winning candidate's external reference by exact
// name match against the fetched pool. First match wins; no match keeps the
// placeholder.
func ResolvePath(name string, candidates []models.CandidateRecord) string {
	for _, candidate := range candidates {
		if candidate.Name == name {
			return candidate.Path
		}
	}
	return models.DefaultPath
}

// Formatter renders a screening result for the requested surface. The
// model's own structure is never reformatted: markdown passes through
// untouched inside whatever envelope the surface needs.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// JSONBody builds the response body for JSON requests.
func (f *Formatter) JSONBody(result *models.ScreenResult) interface{} {
	if result.Mode == models.ModeStructured {
		analysis := result.Structured
		return models.StructuredResponse{
			TopMatchName: analysis.TopMatchName,
			Path:         ResolvePath(analysis.TopMatchName, result.Candidates),
			Analysis:     analysis.Analysis,
			Reasoning:    analysis.Reasoning,
			Bullets:      analysis.Bullets,
		}
	}
	return models.MarkdownResponse{Markdown: result.Markdown}
}

// HTMLBody builds the page returned to form submissions.
func (f *Formatter) HTMLBody(result *models.ScreenResult) string {
	if result.Mode == models.ModeStructured {
		return f.htmlCard(result)
	}
	return fmt.Sprintf("<html><body><pre>%s</pre></body></html>", html.EscapeString(result.Markdown))
}

func (f *Formatter) htmlCard(result *models.ScreenResult) string {
	analysis := result.Structured
	path := ResolvePath(analysis.TopMatchName, result.Candidates)

	var b strings.Builder
	b.WriteString("<html><body><div class=\"report\">")
	b.WriteString(fmt.Sprintf("<h1><a href=\"%s\">%s</a></h1>",
		html.EscapeString(path), html.EscapeString(analysis.TopMatchName)))
	b.WriteString(fmt.Sprintf("<h2>Analysis</h2><p>%s</p>", html.EscapeString(analysis.Analysis)))
	b.WriteString(fmt.Sprintf("<h2>Reasoning</h2><p>%s</p>", html.EscapeString(analysis.Reasoning)))
	if len(analysis.Bullets) > 0 {
		b.WriteString("<h2>Remediation</h2><ul>")
		for _, bullet := range analysis.Bullets {
			b.WriteString(fmt.Sprintf("<li><b>%s:</b> %s</li>",
				html.EscapeString(bullet.Section), html.EscapeString(bullet.Text)))
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</div></body></html>")

	return b.String()
}

// ChatBody builds the chat-bot success payload: a card in structured mode, a
// plain text payload otherwise.
func (f *Formatter) ChatBody(result *models.ScreenResult) interface{} {
	if result.Mode != models.ModeStructured {
		return models.ChatText{Text: result.Markdown}
	}

	analysis := result.Structured
	widgets := []models.ChatWidget{
		{Text: fmt.Sprintf("Resume: %s", ResolvePath(analysis.TopMatchName, result.Candidates))},
		{Text: analysis.Analysis},
		{Text: analysis.Reasoning},
	}
	for _, bullet := range analysis.Bullets {
		widgets = append(widgets, models.ChatWidget{Text: fmt.Sprintf("%s: %s", bullet.Section, bullet.Text)})
	}

	return models.ChatCard{
		Title:   analysis.TopMatchName,
		Widgets: widgets,
	}
}
