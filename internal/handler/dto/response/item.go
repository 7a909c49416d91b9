package response

import (
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []*CommentResponse    `json:"comments"`
}

func FromItemView(rm *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromItemViews(rms []*queries.ItemView) []*ItemResponse {
	resps := make([]*ItemResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromItemView(rm)
	}
	return resps
}

func FromItemDetailView(rm *queries.ItemDetailView) *ItemDetailResponse {
	return &ItemDetailResponse{
		ItemResponse: *FromItemView(&rm.ItemView),
		LastBooking:  shortBooking(rm.Last),
		NextBooking:  shortBooking(rm.Next),
		Comments:     FromCommentViews(rm.Comments),
	}
}

func FromItemDetailViews(rms []*queries.ItemDetailView) []*ItemDetailResponse {
	resps := make([]*ItemDetailResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromItemDetailView(rm)
	}
	return resps
}
