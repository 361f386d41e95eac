package agents

import (
	"fmt"
	"strings"
	"text/template"
)

var promptFuncs = template.FuncMap{
	"join": strings.Join,
}

// Prompt pairs fixed agent instructions with a human message template.
type Prompt struct {
	Name         string
	Instructions string
	Human        *template.Template
}

// NewPrompt parses human as a text/template. Templates reject missing keys.
func NewPrompt(name, instructions, human string) (Prompt, error) {
	tmpl, err := template.New(name).
		Funcs(promptFuncs).
		Option("missingkey=error").
		Parse(human)
	if err != nil {
		return Prompt{}, fmt.Errorf("parse %s template: %w", name, err)
	}

	return Prompt{
		Name:         name,
		Instructions: instructions,
		Human:        tmpl,
	}, nil
}

func mustPrompt(name, instructions, human string) Prompt {
	p, err := NewPrompt(name, instructions, human)
	if err != nil {
		panic(err)
	}
	return p
}

// Render composes instructions, the response format spec, and the human
// message rendered with data.
func (p Prompt) Render(spec string, data any) (string, error) {
	if p.Human == nil {
		return "", fmt.Errorf("%s: no human template", p.Name)
	}

	var human strings.Builder
	if err := p.Human.Execute(&human, data); err != nil {
		return "", fmt.Errorf("render %s: %w", p.Name, err)
	}

	var sb strings.Builder
	sb.WriteString(p.Instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\n")
	sb.WriteString(human.String())

	return sb.String(), nil
}

var (
	patternPrompt   = mustPrompt("analyze_patterns", patternInstructions, patternHuman)
	fraudTypePrompt = mustPrompt("classify_type", fraudTypeInstructions, fraudTypeHuman)
	summaryPrompt   = mustPrompt("generate_summary", summaryInstructions, summaryHuman)
)
