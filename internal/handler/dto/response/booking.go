package response

import (
	"time"

	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	ItemName   string    `json:"itemName"`
	BookerID   uuid.UUID `json:"bookerId"`
	BookerName string    `json:"bookerName"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Status     string    `json:"status"`
}

// BookingShortResponse is the redacted form embedded in item views.
type BookingShortResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         rm.ID(),
		ItemID:     rm.ItemID(),
		ItemName:   rm.ItemName,
		BookerID:   rm.RequesterID(),
		BookerName: rm.BookerName,
		Start:      rm.Start(),
		End:        rm.End(),
		Status:     rm.Status().String(),
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	resps := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromBookingView(rm)
	}
	return resps
}

func shortBooking(rm *queries.BookingView) *BookingShortResponse {
	if rm == nil {
		return nil
	}
	return &BookingShortResponse{ID: rm.ID(), BookerID: rm.RequesterID()}
}
