// Package query turns untrusted list query parameters (limit, p, sort_by,
// sort_ascending) into values that are safe to hand to the store.
package query

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
)

// ErrInvalidQueryType is returned when limit or p is not a whole number, or
// when a strictly validated sort column is unknown.
var ErrInvalidQueryType = errors.New("incorrect query type")

const (
	DefaultLimit = 10
	DefaultPage  = 1
	DefaultSort  = "created_at"
)

// maxExact is the largest integer a float64 holds without rounding.
const maxExact = 1 << 53

// ArticleColumns are the article fields a client may sort by.
var ArticleColumns = []string{"article_id", "topic", "title", "created_at", "author", "votes", "comment_count"}

// CommentColumns are the comment fields a client may sort by.
var CommentColumns = []string{"comment_id", "votes", "created_at", "author", "body"}

// Page is a LIMIT/OFFSET pair.
type Page struct {
	Limit  int64
	Offset int64
}

// Options is everything a list endpoint needs from the query string.
type Options struct {
	Sort      string
	Ascending bool
	Page
}

// ValidateSort returns requested when it is an allowed article column and
// DefaultSort otherwise. It never fails.
func ValidateSort(requested string) string {
	if slices.Contains(ArticleColumns, requested) {
		return requested
	}

	return DefaultSort
}

// ValidateCommentSort is the strict variant used by comment listing: an
// empty value means DefaultSort, an unknown column is an error.
func ValidateCommentSort(requested string) (string, error) {
	if requested == "" {
		return DefaultSort, nil
	}
	if !slices.Contains(CommentColumns, requested) {
		return "", fmt.Errorf("%w: unknown sort_by %q", ErrInvalidQueryType, requested)
	}

	return requested, nil
}

// ComputePage converts raw limit and 1-based page values into a Page. Empty
// strings take DefaultLimit and DefaultPage. Zero or negative values are
// passed through untouched.
func ComputePage(limitRaw, pageRaw string) (Page, error) {
	limit, err := parseWhole("limit", limitRaw, DefaultLimit)
	if err != nil {
		return Page{}, err
	}

	page, err := parseWhole("p", pageRaw, DefaultPage)
	if err != nil {
		return Page{}, err
	}

	offset := limit * (page - 1)
	if page != 1 && offset/(page-1) != limit {
		return Page{}, fmt.Errorf("%w: limit %q with p %q overflows the offset", ErrInvalidQueryType, limitRaw, pageRaw)
	}

	return Page{Limit: limit, Offset: offset}, nil
}

// Ascending reports whether the sort_ascending value asks for ascending
// order. Only the literal "true" does.
func Ascending(raw string) bool {
	return raw == "true"
}

// ArticleOptions reads list options for article listings.
func ArticleOptions(v url.Values) (Options, error) {
	page, err := ComputePage(v.Get("limit"), v.Get("p"))
	if err != nil {
		return Options{}, err
	}

	return Options{
		Sort:      ValidateSort(v.Get("sort_by")),
		Ascending: Ascending(v.Get("sort_ascending")),
		Page:      page,
	}, nil
}

// CommentOptions reads list options for comment listings.
func CommentOptions(v url.Values) (Options, error) {
	page, err := ComputePage(v.Get("limit"), v.Get("p"))
	if err != nil {
		return Options{}, err
	}

	sort, err := ValidateCommentSort(v.Get("sort_by"))
	if err != nil {
		return Options{}, err
	}

	return Options{
		Sort:      sort,
		Ascending: Ascending(v.Get("sort_ascending")),
		Page:      page,
	}, nil
}

func parseWhole(name, raw string, def int64) (int64, error) {
	if raw == "" {
		return def, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidQueryType, name, raw)
	}
	if f != math.Trunc(f) || math.Abs(f) > maxExact {
		return 0, fmt.Errorf("%w: %s %q is not a whole number", ErrInvalidQueryType, name, raw)
	}

	return int64(f), nil
}
