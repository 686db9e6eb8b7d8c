package comment

import (
	"net/http"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

// CommentRequest is the body of a new comment.
type CommentRequest struct {
	Username *string `json:"username" validate:"required"`
	Body     *string `json:"body" validate:"required"`
}

func (c *CommentRequest) Bind(r *http.Request) error {
	return nil
}

type CommentPayload struct {
	*model.Comment
}

func (p *CommentPayload) Render(w http.ResponseWriter, r *http.Request) error {
	p.CreatedAt = p.CreatedAt.UTC()

	return nil
}

// CommentResponse is the `{comment}` envelope.
type CommentResponse struct {
	Comment *CommentPayload `json:"comment"`
}

func NewCommentResponse(c *model.Comment) *CommentResponse {
	return &CommentResponse{Comment: &CommentPayload{Comment: c}}
}

func (rd *CommentResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// CommentListResponse is the `{comments}` envelope.
type CommentListResponse struct {
	Comments []*CommentPayload `json:"comments"`
}

func NewCommentListResponse(comments []model.Comment) *CommentListResponse {
	list := make([]*CommentPayload, 0, len(comments))
	for i := range comments {
		list = append(list, &CommentPayload{Comment: &comments[i]})
	}

	return &CommentListResponse{Comments: list}
}

func (rd *CommentListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for _, p := range rd.Comments {
		if err := p.Render(w, r); err != nil {
			return err
		}
	}

	return nil
}
