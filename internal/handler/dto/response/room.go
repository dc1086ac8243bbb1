package response

import (
	"time"

	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Beds           int32     `json:"beds"`
	BookedSeats    int32     `json:"bookedSeats"`
	AvailableSeats int32     `json:"availableSeats"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromRoomView(rm *queries.RoomView) (*RoomResponse, error) {
	var resp RoomResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, errs.Wrap(err, "failed to map room view")
	}
	return &resp, nil
}
