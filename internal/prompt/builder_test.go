package prompt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder()
	require.NoError(t, err)
	return b
}

func TestBriefContainsKeyword(t *testing.T) {
	b := newTestBuilder(t)

	keywords := []string{
		"best running shoes",
		"a",
		`quotes "inside" & <angles>`,
		"ünïcödé keyword",
		"{{.Keyword}}",
	}

	for _, kw := range keywords {
		t.Run(kw, func(t *testing.T) {
			out, err := b.Brief(kw)
			require.NoError(t, err)
			assert.Contains(t, out, kw)
			assert.Contains(t, out, `this keyword: "`+kw+`"`)
		})
	}
}

func TestBriefListsEveryField(t *testing.T) {
	out, err := newTestBuilder(t).Brief("seo")
	require.NoError(t, err)

	for _, field := range []string{
		"title", "meta_description", "search_intent", "target_audience", "tone",
		"word_count", "h2_headings", "unique_angle", "content_gaps",
		"internal_linking_suggestions", "cta_suggestion",
	} {
		assert.Contains(t, out, "- "+field+":")
	}
}

func TestBriefIsDeterministic(t *testing.T) {
	b := newTestBuilder(t)
	first, err := b.Brief("coffee grinders")
	require.NoError(t, err)
	second, err := b.Brief("coffee grinders")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestArticleEmbedsKeywordAndBrief(t *testing.T) {
	b := newTestBuilder(t)
	brief := map[string]interface{}{
		"title":       "Run & Win",
		"h2_headings": []interface{}{"Why <fit> matters", "Sizing"},
		"word_count":  float64(1800),
	}

	out, err := b.Article("best running shoes", brief)
	require.NoError(t, err)

	assert.Contains(t, out, `for the keyword: "best running shoes"`)
	assert.Contains(t, out, "{\n  \"h2_headings\": [\n    \"Why <fit> matters\",\n    \"Sizing\"\n  ],")
	assert.Contains(t, out, `"title": "Run & Win"`)
	assert.Contains(t, out, `"word_count": 1800`)
	assert.NotContains(t, out, `\u0026`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Return the full article in markdown. Nothing else."))
}

func TestArticleWithEmptyBrief(t *testing.T) {
	out, err := newTestBuilder(t).Article("kw", map[string]interface{}{})
	require.NoError(t, err)
	assert.Contains(t, out, "Brief:\n{}\n")
}

func TestNewBuilderFromFiles(t *testing.T) {
	dir := t.TempDir()
	briefPath := filepath.Join(dir, "brief.tmpl")
	require.NoError(t, os.WriteFile(briefPath, []byte("custom brief for {{.Keyword}}"), 0o600))

	b, err := NewBuilderFromFiles(briefPath, "")
	require.NoError(t, err)

	out, err := b.Brief("kw")
	require.NoError(t, err)
	assert.Equal(t, "custom brief for kw", out)

	// The article template still comes from the embedded default.
	article, err := b.Article("kw", map[string]interface{}{})
	require.NoError(t, err)
	assert.Contains(t, article, "expert SEO content writer")
}

func TestNewBuilderFromFilesErrors(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "bad.tmpl")
	require.NoError(t, os.WriteFile(badPath, []byte("{{.Keyword"), 0o600))

	tests := []struct {
		name        string
		briefPath   string
		articlePath string
	}{
		{name: "missing brief file", briefPath: filepath.Join(dir, "nope.tmpl")},
		{name: "missing article file", articlePath: filepath.Join(dir, "nope.tmpl")},
		{name: "unparsable template", briefPath: badPath},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewBuilderFromFiles(tc.briefPath, tc.articlePath)
			require.Error(t, err)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, ErrInvalidTemplate))
		})
	}
}
