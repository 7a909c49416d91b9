package response

import (
	"time"

	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestResponse struct {
	ID          uuid.UUID       `json:"id"`
	RequesterID uuid.UUID       `json:"requesterId"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	Items       []*ItemResponse `json:"items"`
}

func FromRequestView(rm *queries.RequestView) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          rm.ID,
		RequesterID: rm.RequesterID,
		Description: rm.Description,
		CreatedAt:   rm.CreatedAt,
		Items:       FromItemViews(rm.Items),
	}
}

func FromRequestViews(rms []*queries.RequestView) []*ItemRequestResponse {
	resps := make([]*ItemRequestResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromRequestView(rm)
	}
	return resps
}
