package articleresponse

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

// ArticlePayload is the wire form of one article.
//
// Render is called top-down: first on the envelope, then on each payload,
// like a middleware chain.
type ArticlePayload struct {
	*model.Article
}

func (p *ArticlePayload) Render(w http.ResponseWriter, r *http.Request) error {
	p.CreatedAt = p.CreatedAt.UTC()

	return nil
}

// ArticleResponse is the `{article}` envelope.
type ArticleResponse struct {
	Article *ArticlePayload `json:"article"`
}

func NewArticleResponse(article *model.Article) *ArticleResponse {
	return &ArticleResponse{Article: &ArticlePayload{Article: article}}
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// ArticleListResponse is the `{articles}` envelope.
type ArticleListResponse struct {
	Articles []*ArticlePayload `json:"articles"`
}

func NewArticleListResponse(articles []model.Article) *ArticleListResponse {
	list := make([]*ArticlePayload, 0, len(articles))
	for i := range articles {
		list = append(list, &ArticlePayload{Article: &articles[i]})
	}

	return &ArticleListResponse{Articles: list}
}

func (rd *ArticleListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for _, p := range rd.Articles {
		if err := p.Render(w, r); err != nil {
			return err
		}
	}

	return nil
}

var (
	_ render.Renderer = (*ArticleResponse)(nil)
	_ render.Renderer = (*ArticleListResponse)(nil)
)
