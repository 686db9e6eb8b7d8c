package articleresponse

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

func TestArticleListResponse_Render(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	articles := []model.Article{
		{ID: 1, Title: "a", CreatedAt: time.Date(2020, 1, 1, 3, 0, 0, 0, loc)},
		{ID: 2, Title: "b", CreatedAt: time.Date(2020, 1, 2, 3, 0, 0, 0, loc)},
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, render.Render(w, r, NewArticleListResponse(articles)))

	assert.JSONEq(t, `{"articles":[
		{"article_id":1,"title":"a","topic":"","author":"","votes":0,"created_at":"2020-01-01T00:00:00Z","comment_count":0},
		{"article_id":2,"title":"b","topic":"","author":"","votes":0,"created_at":"2020-01-02T00:00:00Z","comment_count":0}
	]}`, w.Body.String())
}

func TestArticleResponse_Render(t *testing.T) {
	a := &model.Article{ID: 7, Title: "t", Body: "full text", CommentCount: 3}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, render.Render(w, r, NewArticleResponse(a)))

	assert.Contains(t, w.Body.String(), `"body":"full text"`)
	assert.Contains(t, w.Body.String(), `"comment_count":3`)
}
