package topic

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

var errTopicField = errors.New("topic fields must be strings")

// TopicRequest is the body of a new topic. Slug is required and
// description optional; every field present must be a string.
type TopicRequest struct {
	Slug        *string `json:"slug" validate:"required"`
	Description *string `json:"description"`
}

// UnmarshalJSON rejects any member that is not a string, including members
// the topic has no column for.
func (t *TopicRequest) UnmarshalJSON(b []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	for k, v := range fields {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %q is %T", errTopicField, k, v)
		}

		switch k {
		case "slug":
			t.Slug = &s
		case "description":
			t.Description = &s
		}
	}

	return nil
}

func (t *TopicRequest) description() string {
	if t.Description == nil {
		return ""
	}

	return *t.Description
}

func (t *TopicRequest) Bind(r *http.Request) error {
	return nil
}

// ArticleRequest is the body of a new article; its topic comes from the URL.
type ArticleRequest struct {
	Title    *string `json:"title" validate:"required"`
	Username *string `json:"username" validate:"required"`
	Body     *string `json:"body" validate:"required"`
}

func (a *ArticleRequest) Bind(r *http.Request) error {
	return nil
}

// TopicResponse is the `{topic}` envelope.
type TopicResponse struct {
	Topic *model.Topic `json:"topic"`
}

func (rd *TopicResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// TopicListResponse is the `{topics}` envelope.
type TopicListResponse struct {
	Topics []model.Topic `json:"topics"`
}

func (rd *TopicListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
