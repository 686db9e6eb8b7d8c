package userpayload

import (
	"net/http"

	"github.com/SergeyParamoshkin/ncnews/internal/model"
)

type UserPayload struct {
	*model.User
}

func NewUserPayload(user *model.User) *UserPayload {
	return &UserPayload{User: user}
}

func (u *UserPayload) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// UserResponse is the `{user}` envelope.
type UserResponse struct {
	User *UserPayload `json:"user"`
}

func NewUserResponse(user *model.User) *UserResponse {
	return &UserResponse{User: NewUserPayload(user)}
}

func (rd *UserResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// UserListResponse is the `{users}` envelope.
type UserListResponse struct {
	Users []*UserPayload `json:"users"`
}

func NewUserListResponse(users []model.User) *UserListResponse {
	list := make([]*UserPayload, 0, len(users))
	for i := range users {
		list = append(list, NewUserPayload(&users[i]))
	}

	return &UserListResponse{Users: list}
}

func (rd *UserListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
