package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/internal/storage"
	"hotel/shared"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number string `json:"number" validate:"required,max=50"`
	Size   int    `json:"size"   validate:"required,gt=0,lte=2147483647"`
	Price  int    `json:"price"  validate:"required,gt=0,lte=2147483647"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		ID:     uuid.NewString(),
		Number: c.Number,
		Size:   c.Size,
		Price:  c.Price,
	}
}

// UpdateRoomRequest holds the fields to change. Absent fields stay nil
// and are left untouched.
type UpdateRoomRequest struct {
	Number *string `db:"number" json:"number" validate:"omitempty,max=50"`
	Size   *int    `db:"size"   json:"size"   validate:"omitempty,gt=0,lte=2147483647"`
	Price  *int    `db:"price"  json:"price"  validate:"omitempty,gt=0,lte=2147483647"`
}

func (u *UpdateRoomRequest) ToRecord() storage.Record {
	return shared.TransformFields(u)
}

type RoomResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Size   int    `json:"size"`
	Price  int    `json:"price"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Size = model.Size
	r.Price = model.Price
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
