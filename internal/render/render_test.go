package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsrefhub/backend/internal/catalog"
)

func TestRenderPage(t *testing.T) {
	r := New()

	page := &catalog.Page{
		ID:            "array",
		Title:         "Array",
		Description:   "Ordered list of values.",
		Overview:      "Arrays hold <code>multiple</code> items.",
		SyntaxExample: "const a = [1 < 2];",
		UseCases: []catalog.UseCase{
			{Title: "Summing", Code: "reduce()", Explanation: "Folds values."},
		},
	}

	html, err := r.Page(page)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<h1>Array</h1>")
	assert.Contains(t, out, `data-page-id="array"`)
	// Allowed markup survives sanitization.
	assert.Contains(t, out, "<code>multiple</code>")
	// Code blocks are escaped, not interpreted.
	assert.Contains(t, out, "const a = [1 &lt; 2];")
	assert.Contains(t, out, "<h3>Summing</h3>")
}

func TestRenderStripsScripts(t *testing.T) {
	r := New()

	page := &catalog.Page{
		ID:       "evil",
		Title:    "Evil",
		Overview: `safe text<script>alert("xss")</script>`,
	}

	html, err := r.Page(page)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "safe text")
	assert.NotContains(t, out, "<script>")
}
