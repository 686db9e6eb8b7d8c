package query

import (
	"errors"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSort(t *testing.T) {
	for _, col := range ArticleColumns {
		assert.Equal(t, col, ValidateSort(col))
	}

	for _, bad := range []string{"", "1", "hello", "body", "created_at; DROP TABLE articles", "TITLE"} {
		assert.Equal(t, DefaultSort, ValidateSort(bad), "input %q", bad)
	}
}

func TestValidateCommentSort(t *testing.T) {
	got, err := ValidateCommentSort("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSort, got)

	got, err = ValidateCommentSort("comment_id")
	require.NoError(t, err)
	assert.Equal(t, "comment_id", got)

	_, err = ValidateCommentSort("nothing")
	assert.True(t, errors.Is(err, ErrInvalidQueryType))

	_, err = ValidateCommentSort("comment_count")
	assert.True(t, errors.Is(err, ErrInvalidQueryType))
}

func TestComputePage(t *testing.T) {
	tests := []struct {
		name     string
		limit, p string
		want     Page
		wantErr  bool
	}{
		{name: "defaults", want: Page{Limit: 10, Offset: 0}},
		{name: "first page", limit: "5", p: "1", want: Page{Limit: 5, Offset: 0}},
		{name: "second page", limit: "5", p: "2", want: Page{Limit: 5, Offset: 5}},
		{name: "default limit third page", p: "3", want: Page{Limit: 10, Offset: 20}},
		{name: "exponent form", limit: "1e1", p: "2", want: Page{Limit: 10, Offset: 10}},
		{name: "zero limit passes through", limit: "0", want: Page{Limit: 0, Offset: 0}},
		{name: "negative limit passes through", limit: "-3", p: "2", want: Page{Limit: -3, Offset: -3}},
		{name: "page zero gives negative offset", limit: "10", p: "0", want: Page{Limit: 10, Offset: -10}},
		{name: "text limit", limit: "text", wantErr: true},
		{name: "text page", p: "five", wantErr: true},
		{name: "infinite", limit: "Inf", wantErr: true},
		{name: "nan", p: "NaN", wantErr: true},
		{name: "fractional", limit: "2.5", wantErr: true},
		{name: "huge", limit: "1e300", wantErr: true},
		{name: "offset overflow", limit: "9007199254740992", p: "9007199254740992", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePage(tt.limit, tt.p)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidQueryType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputePage_Slices(t *testing.T) {
	// pages of size L tile the result set without gaps or overlaps
	const limit = 3
	next := int64(0)
	for p := 1; p <= 5; p++ {
		page, err := ComputePage("3", strconv.Itoa(p))
		require.NoError(t, err)
		assert.Equal(t, int64(limit), page.Limit)
		assert.Equal(t, next, page.Offset)
		next += page.Limit
	}
}

func TestAscending(t *testing.T) {
	assert.True(t, Ascending("true"))
	for _, v := range []string{"", "false", "TRUE", "blahblah", "1"} {
		assert.False(t, Ascending(v), "input %q", v)
	}
}

func TestArticleOptions(t *testing.T) {
	opts, err := ArticleOptions(url.Values{
		"sort_by":        {"title"},
		"sort_ascending": {"true"},
		"limit":          {"5"},
		"p":              {"2"},
	})
	require.NoError(t, err)
	assert.Equal(t, Options{Sort: "title", Ascending: true, Page: Page{Limit: 5, Offset: 5}}, opts)

	opts, err = ArticleOptions(url.Values{"sort_by": {"hello"}, "wrong": {"text"}})
	require.NoError(t, err)
	assert.Equal(t, Options{Sort: DefaultSort, Page: Page{Limit: DefaultLimit}}, opts)

	_, err = ArticleOptions(url.Values{"limit": {"string"}})
	assert.True(t, errors.Is(err, ErrInvalidQueryType))
}

func TestCommentOptions(t *testing.T) {
	opts, err := CommentOptions(url.Values{"sort_by": {"comment_id"}})
	require.NoError(t, err)
	assert.Equal(t, "comment_id", opts.Sort)
	assert.False(t, opts.Ascending)

	_, err = CommentOptions(url.Values{"sort_by": {"nothing"}})
	assert.True(t, errors.Is(err, ErrInvalidQueryType))

	_, err = CommentOptions(url.Values{"limit": {"text"}})
	assert.True(t, errors.Is(err, ErrInvalidQueryType))
}
