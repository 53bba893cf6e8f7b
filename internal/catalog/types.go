package catalog

import "time"

// UseCase is one worked example on a reference page.
type UseCase struct {
	Title       string `json:"title" yaml:"title"`
	Code        string `json:"code" yaml:"code"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Page is the documentation record for one JavaScript built-in
// (Array, Map, Promise, ...). Overview and explanations may carry
// markup; the renderer sanitizes them before display.
type Page struct {
	ID            string    `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	Description   string    `json:"description" yaml:"description"`
	Overview      string    `json:"overview" yaml:"overview"`
	SyntaxExample string    `json:"syntax_example" yaml:"syntax_example"`
	UseCases      []UseCase `json:"use_cases,omitempty" yaml:"use_cases,omitempty"`
	Category      string    `json:"category,omitempty" yaml:"category,omitempty"`
	Tags          []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty" yaml:"-"`
}
