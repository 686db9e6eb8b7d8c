// Package client is a typed HTTP client for the news API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

const DefaultBasePath = "/api"

type Client struct {
	http.Client
	Addr string
	// BasePath defaults to DefaultBasePath.
	BasePath string
}

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// ListParams are the optional list query parameters. Zero values are
// not sent.
type ListParams struct {
	Limit     int
	Page      int
	SortBy    string
	Ascending bool
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Limit != 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Page != 0 {
		v.Set("p", strconv.Itoa(p.Page))
	}
	if p.SortBy != "" {
		v.Set("sort_by", p.SortBy)
	}
	if p.Ascending {
		v.Set("sort_ascending", "true")
	}

	return v
}

func (c *Client) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Addr+"/ping", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func (c *Client) Topics(ctx context.Context) ([]model.Topic, error) {
	var out struct {
		Topics []model.Topic `json:"topics"`
	}
	err := c.do(ctx, http.MethodGet, "/topics", nil, nil, &out)

	return out.Topics, err
}

func (c *Client) CreateTopic(ctx context.Context, slug, description string) (*model.Topic, error) {
	var out struct {
		Topic *model.Topic `json:"topic"`
	}
	in := map[string]string{"slug": slug, "description": description}
	err := c.do(ctx, http.MethodPost, "/topics", nil, in, &out)

	return out.Topic, err
}

func (c *Client) Articles(ctx context.Context, p ListParams) ([]model.Article, error) {
	var out struct {
		Articles []model.Article `json:"articles"`
	}
	err := c.do(ctx, http.MethodGet, "/articles", p.values(), nil, &out)

	return out.Articles, err
}

func (c *Client) TopicArticles(ctx context.Context, topic string, p ListParams) ([]model.Article, error) {
	var out struct {
		Articles []model.Article `json:"articles"`
	}
	err := c.do(ctx, http.MethodGet, "/topics/"+url.PathEscape(topic)+"/articles", p.values(), nil, &out)

	return out.Articles, err
}

func (c *Client) CreateArticle(ctx context.Context, topic, title, username, body string) (*model.Article, error) {
	var out struct {
		Article *model.Article `json:"article"`
	}
	in := map[string]string{"title": title, "username": username, "body": body}
	err := c.do(ctx, http.MethodPost, "/topics/"+url.PathEscape(topic)+"/articles", nil, in, &out)

	return out.Article, err
}

func (c *Client) Article(ctx context.Context, id int64) (*model.Article, error) {
	var out struct {
		Article *model.Article `json:"article"`
	}
	err := c.do(ctx, http.MethodGet, articlePath(id), nil, nil, &out)

	return out.Article, err
}

func (c *Client) VoteArticle(ctx context.Context, id, inc int64) (*model.Article, error) {
	var out struct {
		Article *model.Article `json:"article"`
	}
	err := c.do(ctx, http.MethodPatch, articlePath(id), nil, map[string]int64{"inc_votes": inc}, &out)

	return out.Article, err
}

func (c *Client) DeleteArticle(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, articlePath(id), nil, nil, nil)
}

func (c *Client) Comments(ctx context.Context, articleID int64, p ListParams) ([]model.Comment, error) {
	var out struct {
		Comments []model.Comment `json:"comments"`
	}
	err := c.do(ctx, http.MethodGet, articlePath(articleID)+"/comments", p.values(), nil, &out)

	return out.Comments, err
}

func (c *Client) CreateComment(ctx context.Context, articleID int64, username, body string) (*model.Comment, error) {
	var out struct {
		Comment *model.Comment `json:"comment"`
	}
	in := map[string]string{"username": username, "body": body}
	err := c.do(ctx, http.MethodPost, articlePath(articleID)+"/comments", nil, in, &out)

	return out.Comment, err
}

func (c *Client) VoteComment(ctx context.Context, articleID, commentID, inc int64) (*model.Comment, error) {
	var out struct {
		Comment *model.Comment `json:"comment"`
	}
	err := c.do(ctx, http.MethodPatch, commentPath(articleID, commentID), nil, map[string]int64{"inc_votes": inc}, &out)

	return out.Comment, err
}

func (c *Client) DeleteComment(ctx context.Context, articleID, commentID int64) error {
	return c.do(ctx, http.MethodDelete, commentPath(articleID, commentID), nil, nil, nil)
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var out struct {
		Users []model.User `json:"users"`
	}
	err := c.do(ctx, http.MethodGet, "/users", nil, nil, &out)

	return out.Users, err
}

func (c *Client) User(ctx context.Context, username string) (*model.User, error) {
	var out struct {
		User *model.User `json:"user"`
	}
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), nil, nil, &out)

	return out.User, err
}

func articlePath(id int64) string {
	return "/articles/" + strconv.FormatInt(id, 10)
}

func commentPath(articleID, commentID int64) string {
	return articlePath(articleID) + "/comments/" + strconv.FormatInt(commentID, 10)
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, in, out any) error {
	base := c.BasePath
	if base == "" {
		base = DefaultBasePath
	}

	target := c.Addr + base + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}

		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
