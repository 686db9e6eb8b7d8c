package errresponse

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyParamoshkin/ncnews/internal/query"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

func constraint(kind error, column string) error {
	return fmt.Errorf("failed to create: %w", &store.ConstraintError{Kind: kind, Column: column})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"resource not found", store.NewNotFoundError("article", "9"), 404, "article not found"},
		{"wrapped not found", fmt.Errorf("get: %w", store.NewNotFoundError("user", "x")), 404, "user not found"},
		{"bare not found", store.ErrNotFound, 404, "not found"},
		{"unknown topic on insert", constraint(store.ErrForeignKey, "topic"), 404, "topic does not exist"},
		{"missing article on comment", constraint(store.ErrForeignKey, "article_id"), 422, "article_id does not exist"},
		{"unknown author", constraint(store.ErrForeignKey, "username"), 422, "username does not exist"},
		{"foreign key without column", constraint(store.ErrForeignKey, ""), 422, "unprocessable entity"},
		{"duplicate slug", constraint(store.ErrUnique, "slug"), 422, "slug already exists"},
		{"invalid query type", fmt.Errorf("%w: limit", query.ErrInvalidQueryType), 400, "incorrect query type"},
		{"malformed body", fmt.Errorf("%w: bad json", ErrMalformedInput), 400, "invalid request body"},
		{"malformed store input", fmt.Errorf("%w: 22P02", store.ErrMalformed), 400, "bad request"},
		{"unclassified", errors.New("connection refused"), 500, "internal server error"},
		{"unknown pg code", &pgconn.PgError{Code: "57014"}, 500, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.Equal(t, tt.status, got.HTTPStatusCode)
			assert.Equal(t, tt.message, got.Message)
			assert.Equal(t, tt.err, got.Err)
		})
	}
}

func TestRender(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/articles/9", nil)

	Render(w, r, store.NewNotFoundError("article", "9"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, map[string]string{"message": "article not found"}, body)
}

func TestRender_HidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/topics", nil)

	Render(w, r, errors.New("dial tcp 10.0.0.1:5432: secret detail"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestRespond_ErrorValue(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	render.Respond(w, r, errors.New("leaky"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "leaky")
}
