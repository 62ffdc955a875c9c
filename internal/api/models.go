package api

// BriefRequest is the payload of POST /api/brief.
type BriefRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}

// ArticleRequest is the payload of POST /api/article. Brief is usually the
// object returned by /api/brief, possibly edited by the user. The keyword is
// required here as well: an article prompt without one has no topic.
type ArticleRequest struct {
	Keyword string                 `json:"keyword" validate:"required"`
	Brief   map[string]interface{} `json:"brief"   validate:"required"`
}

// ArticleResponse is the successful response of POST /api/article.
type ArticleResponse struct {
	Article string `json:"article"`
}
