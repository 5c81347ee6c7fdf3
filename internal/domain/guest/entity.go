package guest

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("guest name is required")

// Guest is a profile deduplicated by identity number: repeated bookings by
// the same national ID reuse and update one record. Visit and spend counters
// accumulate across stays; spend is attributed to primary guests only.
type Guest struct {
	id              uuid.UUID
	name            string
	identityNumber  IdentityNumber
	contact         ContactInfo
	isActive        bool
	visits          int
	totalSpentCents int64
	createdAt       time.Time
	updatedAt       time.Time
}

func NewGuest(now time.Time, name string, identityNumber IdentityNumber, contact ContactInfo) (*Guest, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Guest{
		id:             uuid.New(),
		name:           name,
		identityNumber: identityNumber,
		contact:        contact,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructGuest(
	id uuid.UUID,
	name string,
	identityNumber IdentityNumber,
	contact ContactInfo,
	isActive bool,
	visits int,
	totalSpentCents int64,
	createdAt, updatedAt time.Time,
) *Guest {
	return &Guest{
		id:              id,
		name:            name,
		identityNumber:  identityNumber,
		contact:         contact,
		isActive:        isActive,
		visits:          visits,
		totalSpentCents: totalSpentCents,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (g *Guest) ID() uuid.UUID                  { return g.id }
func (g *Guest) Name() string                   { return g.name }
func (g *Guest) IdentityNumber() IdentityNumber { return g.identityNumber }
func (g *Guest) Contact() ContactInfo           { return g.contact }
func (g *Guest) IsActive() bool                 { return g.isActive }
func (g *Guest) Visits() int                    { return g.visits }
func (g *Guest) TotalSpentCents() int64         { return g.totalSpentCents }
func (g *Guest) CreatedAt() time.Time           { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time           { return g.updatedAt }

// UpdateContact refreshes the mutable contact fields on every booking that
// references this identity number.
func (g *Guest) UpdateContact(now time.Time, contact ContactInfo) {
	g.contact = contact
	g.updatedAt = now
}

// RecordVisit bumps the visit counter and, for spend-bearing visits (primary
// guest bookings), adds to the lifetime total.
func (g *Guest) RecordVisit(now time.Time, spentCents int64) {
	g.visits++
	g.totalSpentCents += spentCents
	g.updatedAt = now
}

// Reactivate is invoked at check-in. There is no deactivate-on-checkout:
// guests stay visible as history after they leave.
func (g *Guest) Reactivate(now time.Time) {
	g.isActive = true
	g.updatedAt = now
}
