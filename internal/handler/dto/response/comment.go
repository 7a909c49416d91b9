package response

import (
	"time"

	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromCommentView(rm *queries.CommentView) *CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCommentViews(rms []*queries.CommentView) []*CommentResponse {
	resps := make([]*CommentResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromCommentView(rm)
	}
	return resps
}
