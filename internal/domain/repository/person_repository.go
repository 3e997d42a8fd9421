// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"persons/internal/domain/entity"
)

// ErrPersonNotFound is a domain-specific error returned when a person is not found.
var ErrPersonNotFound = errors.New("person not found")

// PersonPatch is a typed partial update: only non-nil fields are written.
// The address group (CEP through State) is always supplied together by the
// usecase layer, as the outcome of a successful lookup.
type PersonPatch struct {
	FirstName *string
	LastName  *string
	Age       *int
	HeightCM  *float64
	WeightKG  *float64

	CEP          *string
	Street       *string
	Neighborhood *string
	City         *string
	State        *string
}

// IsEmpty reports whether the patch touches no fields at all.
func (p PersonPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Age == nil &&
		p.HeightCM == nil && p.WeightKG == nil && p.CEP == nil
}

// SetAddress fills the address group from a resolved lookup result.
func (p *PersonPatch) SetAddress(info *entity.AddressInfo) {
	if info == nil {
		return
	}

	cep := info.CEP
	p.CEP = &cep
	p.Street = info.Street
	p.Neighborhood = info.Neighborhood
	p.City = info.City
	p.State = info.State
}

// PersonRepository defines the standard operations for person persistence.
// The application layer depends on this interface, not the concrete implementation.
type PersonRepository interface {
	// Create persists a new person entity, including any resolved address
	// fields, and fills in the store-assigned ID and timestamps.
	Create(ctx context.Context, person *entity.Person) error

	// FindByID retrieves a single person by their unique ID.
	// Returns ErrPersonNotFound when no row exists.
	FindByID(ctx context.Context, id int64) (*entity.Person, error)

	// List returns a page of persons ordered by creation time descending,
	// together with the total number of rows.
	List(ctx context.Context, limit, offset int) ([]*entity.Person, int64, error)

	// Update applies a typed patch to an existing row, touching only the
	// fields present in the patch. An empty patch returns the current row
	// unchanged. Returns ErrPersonNotFound when no row exists.
	Update(ctx context.Context, id int64, patch PersonPatch) (*entity.Person, error)

	// Delete removes a person by ID, reporting whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
