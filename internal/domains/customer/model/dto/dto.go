package dto

import (
	"hotel/internal/domains/customer/model"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

func (c *CreateCustomerRequest) ToModel() model.Customer {
	return model.Customer{
		ID:    uuid.NewString(),
		Name:  c.Name,
		Email: c.Email,
	}
}

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
}

func FromModels(models []model.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
