package prompt

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	briefTemplateName   = "brief.tmpl"
	articleTemplateName = "article.tmpl"
)

// ErrInvalidTemplate is returned when a template cannot be loaded or parsed.
var ErrInvalidTemplate = errors.New("invalid prompt template")

type briefData struct {
	Keyword string
}

type articleData struct {
	Keyword   string
	BriefJSON string
}

// Builder renders brief and article prompts. It is safe for concurrent use.
type Builder struct {
	brief   *template.Template
	article *template.Template
}

// NewBuilder creates a Builder from the embedded default templates.
func NewBuilder() (*Builder, error) {
	return NewBuilderFromFiles("", "")
}

// NewBuilderFromFiles creates a Builder, reading each template from the given
// path when it is non-empty and from the embedded default otherwise.
func NewBuilderFromFiles(briefPath, articlePath string) (*Builder, error) {
	brief, err := loadTemplate(briefTemplateName, briefPath)
	if err != nil {
		return nil, err
	}

	article, err := loadTemplate(articleTemplateName, articlePath)
	if err != nil {
		return nil, err
	}

	return &Builder{brief: brief, article: article}, nil
}

func loadTemplate(name, path string) (*template.Template, error) {
	var (
		content []byte
		err     error
	)
	if path != "" {
		content, err = os.ReadFile(path)
	} else {
		content, err = templateFS.ReadFile("templates/" + name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidTemplate, name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidTemplate, name, err)
	}
	return tmpl, nil
}

// Brief renders the brief prompt for keyword.
func (b *Builder) Brief(keyword string) (string, error) {
	return execute(b.brief, briefData{Keyword: keyword})
}

// Article renders the article prompt for keyword, embedding brief as
// indented JSON.
func (b *Builder) Article(keyword string, brief map[string]interface{}) (string, error) {
	briefJSON, err := indentJSON(brief)
	if err != nil {
		return "", fmt.Errorf("failed to encode brief: %w", err)
	}
	return execute(b.article, articleData{Keyword: keyword, BriefJSON: briefJSON})
}

func execute(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// indentJSON encodes v with two-space indentation and without HTML escaping,
// so characters like & and < reach the model unchanged.
func indentJSON(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
