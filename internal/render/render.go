// Package render turns catalog pages into standalone HTML documents
// for the offline page cache and the /html endpoint.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jsrefhub/backend/internal/catalog"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} — JavaScript Reference</title>
</head>
<body>
<article class="reference-page" data-page-id="{{.ID}}">
<h1>{{.Title}}</h1>
<p class="description">{{.Description}}</p>
<section class="overview">{{.Overview}}</section>
<section class="syntax">
<h2>Syntax</h2>
<pre><code>{{.SyntaxExample}}</code></pre>
</section>
{{if .UseCases}}<section class="use-cases">
<h2>Use Cases</h2>
{{range .UseCases}}<div class="use-case">
<h3>{{.Title}}</h3>
<pre><code>{{.Code}}</code></pre>
{{if .Explanation}}<p>{{.Explanation}}</p>{{end}}
</div>
{{end}}</section>{{end}}
</article>
</body>
</html>
`

type useCaseView struct {
	Title       string
	Code        string
	Explanation template.HTML
}

type pageView struct {
	ID            string
	Title         string
	Description   string
	Overview      template.HTML
	SyntaxExample string
	UseCases      []useCaseView
}

// Renderer renders catalog pages. Content fields that may carry
// markup pass through a UGC sanitization policy first.
type Renderer struct {
	policy *bluemonday.Policy
	tmpl   *template.Template
}

// New creates a renderer.
func New() *Renderer {
	return &Renderer{
		policy: bluemonday.UGCPolicy(),
		tmpl:   template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Page renders one reference page to a full HTML document.
func (r *Renderer) Page(page *catalog.Page) ([]byte, error) {
	view := pageView{
		ID:            page.ID,
		Title:         page.Title,
		Description:   page.Description,
		Overview:      template.HTML(r.policy.Sanitize(page.Overview)),
		SyntaxExample: page.SyntaxExample,
	}
	for _, uc := range page.UseCases {
		view.UseCases = append(view.UseCases, useCaseView{
			Title:       uc.Title,
			Code:        uc.Code,
			Explanation: template.HTML(r.policy.Sanitize(uc.Explanation)),
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render page %s: %w", page.ID, err)
	}
	return buf.Bytes(), nil
}
