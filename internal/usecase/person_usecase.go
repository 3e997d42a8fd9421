// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"persons/internal/domain/entity"
)

// --- Input DTOs ---

// CreatePersonInput defines the data required to create a person record.
// The CEP is optional: when present it must be resolvable, when absent the
// record is created without address fields.
type CreatePersonInput struct {
	FirstName string   `json:"first_name" validate:"required,max=80"`
	LastName  string   `json:"last_name" validate:"required,max=80"`
	Age       *int     `json:"age" validate:"required,gte=0,lte=120"`
	HeightCM  *float64 `json:"height_cm" validate:"omitempty,gte=0,lte=300"`
	WeightKG  *float64 `json:"weight_kg" validate:"omitempty,gte=0,lte=500"`
	CEP       *string  `json:"cep" validate:"omitempty,cep"`
}

// UpdatePersonInput defines a partial update: only non-nil fields are
// applied. A supplied CEP re-resolves the whole address group.
type UpdatePersonInput struct {
	FirstName *string  `json:"first_name" validate:"omitempty,min=1,max=80"`
	LastName  *string  `json:"last_name" validate:"omitempty,min=1,max=80"`
	Age       *int     `json:"age" validate:"omitempty,gte=0,lte=120"`
	HeightCM  *float64 `json:"height_cm" validate:"omitempty,gte=0,lte=300"`
	WeightKG  *float64 `json:"weight_kg" validate:"omitempty,gte=0,lte=500"`
	CEP       *string  `json:"cep" validate:"omitempty,cep"`
}

// UpdateCEPInput carries the mandatory CEP for the address-only update.
type UpdateCEPInput struct {
	CEP string `json:"cep" validate:"required,cep"`
}

// ListPersonsInput defines the pagination window.
type ListPersonsInput struct {
	Limit  int
	Offset int
}

// --- Output DTOs ---

// PersonOutput is the response shape for a person record.
type PersonOutput struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Age          int       `json:"age"`
	HeightCM     *float64  `json:"height_cm"`
	WeightKG     *float64  `json:"weight_kg"`
	CEP          *string   `json:"cep"`
	Street       *string   `json:"street"`
	Neighborhood *string   `json:"neighborhood"`
	City         *string   `json:"city"`
	State        *string   `json:"state"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListPersonsOutput is one page of person records.
type ListPersonsOutput struct {
	Persons []*PersonOutput `json:"persons"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
	HasNext bool            `json:"has_next"`
}

// ToPersonOutput maps a domain entity onto the response shape.
func ToPersonOutput(person *entity.Person) *PersonOutput {
	if person == nil {
		return nil
	}

	return &PersonOutput{
		ID:           person.ID,
		FirstName:    person.FirstName,
		LastName:     person.LastName,
		Age:          person.Age,
		HeightCM:     person.HeightCM,
		WeightKG:     person.WeightKG,
		CEP:          person.CEP,
		Street:       person.Street,
		Neighborhood: person.Neighborhood,
		City:         person.City,
		State:        person.State,
		CreatedAt:    person.CreatedAt,
		UpdatedAt:    person.UpdatedAt,
	}
}

// PersonUsecase defines the interface for person-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type PersonUsecase interface {
	Create(ctx context.Context, input *CreatePersonInput) (*PersonOutput, error)
	Get(ctx context.Context, id int64) (*PersonOutput, error)
	List(ctx context.Context, input *ListPersonsInput) (*ListPersonsOutput, error)
	Update(ctx context.Context, id int64, input *UpdatePersonInput) (*PersonOutput, error)
	UpdateCEP(ctx context.Context, id int64, input *UpdateCEPInput) (*PersonOutput, error)
	Delete(ctx context.Context, id int64) error
}
