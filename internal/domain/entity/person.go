// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Person is the core entity of the system: a registered person record,
// optionally enriched with the postal address resolved from its CEP.
type Person struct {
	ID        int64    // Store-assigned identifier, immutable after creation.
	FirstName string   // Required, 1-80 characters.
	LastName  string   // Required, 1-80 characters.
	Age       int      // Required, 0-120.
	HeightCM  *float64 // Optional, 0-300.
	WeightKG  *float64 // Optional, 0-500.

	// Address fields. They are populated together as the result of a
	// successful CEP lookup and are never edited independently of CEP.
	CEP          *string
	Street       *string
	Neighborhood *string
	City         *string
	State        *string

	CreatedAt time.Time // Set once at creation.
	UpdatedAt time.Time // Refreshed on every mutation.
}

// ApplyAddress overwrites the address group from a resolved lookup result.
func (p *Person) ApplyAddress(info *AddressInfo) {
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

// AddressInfo is the value object returned by a CEP lookup.
// Providers may omit any of the street-level components.
type AddressInfo struct {
	CEP          string // Normalized 8-digit code the lookup was performed with.
	Street       *string
	Neighborhood *string
	City         *string
	State        *string
}
