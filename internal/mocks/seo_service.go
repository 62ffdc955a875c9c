package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/seobrief-api/internal/domain"
)

// BriefCall records one GenerateBrief invocation.
type BriefCall struct {
	Keyword string
}

// ArticleCall records one GenerateArticle invocation.
type ArticleCall struct {
	Keyword string
	Brief   domain.Brief
}

// MockSEOService implements service.SEOService for testing.
type MockSEOService struct {
	GenerateBriefFn   func(ctx context.Context, keyword string) (domain.Brief, error)
	GenerateArticleFn func(ctx context.Context, keyword string, brief domain.Brief) (string, error)

	// Default return values
	Brief   domain.Brief
	Article string
	Err     error

	mu           sync.Mutex
	briefCalls   []BriefCall
	articleCalls []ArticleCall
}

// GenerateBrief implements service.SEOService.
func (m *MockSEOService) GenerateBrief(ctx context.Context, keyword string) (domain.Brief, error) {
	m.mu.Lock()
	m.briefCalls = append(m.briefCalls, BriefCall{Keyword: keyword})
	m.mu.Unlock()

	if m.GenerateBriefFn != nil {
		return m.GenerateBriefFn(ctx, keyword)
	}
	return m.Brief, m.Err
}

// GenerateArticle implements service.SEOService.
func (m *MockSEOService) GenerateArticle(
	ctx context.Context,
	keyword string,
	brief domain.Brief,
) (string, error) {
	m.mu.Lock()
	m.articleCalls = append(m.articleCalls, ArticleCall{Keyword: keyword, Brief: brief})
	m.mu.Unlock()

	if m.GenerateArticleFn != nil {
		return m.GenerateArticleFn(ctx, keyword, brief)
	}
	return m.Article, m.Err
}

// BriefCalls returns the recorded GenerateBrief calls.
func (m *MockSEOService) BriefCalls() []BriefCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]BriefCall(nil), m.briefCalls...)
}

// ArticleCalls returns the recorded GenerateArticle calls.
func (m *MockSEOService) ArticleCalls() []ArticleCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ArticleCall(nil), m.articleCalls...)
}
