//go:build unit || e2e

package builder

import (
	"time"

	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/handler/dto/request"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/validator"

	"github.com/google/uuid"
)

// ReservationBuilder assembles booking inputs with sensible defaults: a
// one-guest stay starting tomorrow, unpaid, on a freshly generated room ID.
type ReservationBuilder struct {
	roomID           uuid.UUID
	primaryGuestID   uuid.UUID
	checkIn          time.Time
	checkOut         time.Time
	numberOfGuests   int
	primaryGuest     validator.GuestDetail
	additionalGuests []validator.GuestDetail
	totalAmountCents int64
	paidAmountCents  int64
	paymentMethod    string
	specialRequests  string
	now              time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC()
	checkIn := reservation.TruncateToDate(now.AddDate(0, 0, 1))
	return &ReservationBuilder{
		roomID:         uuid.New(),
		primaryGuestID: uuid.New(),
		checkIn:        checkIn,
		checkOut:       checkIn.AddDate(0, 0, 3),
		numberOfGuests: 1,
		primaryGuest: validator.GuestDetail{
			Name:           "Alice Morgan",
			IdentityNumber: "12345678901",
			Email:          "alice@example.com",
			Phone:          "+1-555-0100",
		},
		totalAmountCents: 45000,
		paidAmountCents:  0,
		paymentMethod:    "card",
		now:              now,
	}
}

// GuestDetailFixture is a shorthand for tests that only care about the
// identity fields.
func GuestDetailFixture(name, identityNumber string) validator.GuestDetail {
	return validator.GuestDetail{Name: name, IdentityNumber: identityNumber}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithRoomID(id uuid.UUID) *ReservationBuilder {
	b.roomID = id
	return b
}

func (b *ReservationBuilder) WithPrimaryGuestID(id uuid.UUID) *ReservationBuilder {
	b.primaryGuestID = id
	return b
}

func (b *ReservationBuilder) WithDates(checkIn, checkOut time.Time) *ReservationBuilder {
	b.checkIn = checkIn
	b.checkOut = checkOut
	return b
}

func (b *ReservationBuilder) WithNumberOfGuests(n int) *ReservationBuilder {
	b.numberOfGuests = n
	return b
}

func (b *ReservationBuilder) WithPrimaryGuest(detail validator.GuestDetail) *ReservationBuilder {
	b.primaryGuest = detail
	return b
}

func (b *ReservationBuilder) WithAdditionalGuest(detail validator.GuestDetail) *ReservationBuilder {
	b.additionalGuests = append(b.additionalGuests, detail)
	b.numberOfGuests = 1 + len(b.additionalGuests)
	return b
}

func (b *ReservationBuilder) WithAmounts(totalCents, paidCents int64) *ReservationBuilder {
	b.totalAmountCents = totalCents
	b.paidAmountCents = paidCents
	return b
}

func (b *ReservationBuilder) WithPaymentMethod(method string) *ReservationBuilder {
	b.paymentMethod = method
	return b
}

func (b *ReservationBuilder) WithSpecialRequests(requests string) *ReservationBuilder {
	b.specialRequests = requests
	return b
}

func (b *ReservationBuilder) WithNow(now time.Time) *ReservationBuilder {
	b.now = now
	return b
}

func (b *ReservationBuilder) BuildInput() validator.CreateReservationInput {
	return validator.CreateReservationInput{
		RoomID:           b.roomID,
		CheckIn:          b.checkIn,
		CheckOut:         b.checkOut,
		NumberOfGuests:   b.numberOfGuests,
		PrimaryGuest:     b.primaryGuest,
		AdditionalGuests: b.additionalGuests,
		TotalAmountCents: b.totalAmountCents,
		PaidAmountCents:  b.paidAmountCents,
		PaymentMethod:    b.paymentMethod,
		SpecialRequests:  b.specialRequests,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() request.CreateReservationRequest {
	additional := make([]request.GuestDetail, len(b.additionalGuests))
	for i, g := range b.additionalGuests {
		additional[i] = request.GuestDetail{
			Name:           g.Name,
			IdentityNumber: g.IdentityNumber,
			Email:          g.Email,
			Phone:          g.Phone,
			Address:        g.Address,
		}
	}

	return request.CreateReservationRequest{
		RoomID:               b.roomID,
		CheckIn:              b.checkIn,
		CheckOut:             b.checkOut,
		NumberOfGuests:       b.numberOfGuests,
		PrimaryGuestName:     b.primaryGuest.Name,
		PrimaryGuestIDNumber: b.primaryGuest.IdentityNumber,
		PrimaryGuestEmail:    b.primaryGuest.Email,
		PrimaryGuestPhone:    b.primaryGuest.Phone,
		PrimaryGuestAddress:  b.primaryGuest.Address,
		AdditionalGuests:     additional,
		TotalAmountCents:     b.totalAmountCents,
		PaidAmountCents:      b.paidAmountCents,
		PaymentMethod:        b.paymentMethod,
		SpecialRequests:      b.specialRequests,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	guests := []queries.ReservationGuestView{
		{
			GuestID:        b.primaryGuestID,
			Name:           b.primaryGuest.Name,
			IdentityNumber: b.primaryGuest.IdentityNumber,
			IsPrimary:      true,
		},
	}
	for _, g := range b.additionalGuests {
		guests = append(guests, queries.ReservationGuestView{
			GuestID:        uuid.New(),
			Name:           g.Name,
			IdentityNumber: g.IdentityNumber,
		})
	}

	return &queries.ReservationView{
		ID:               uuid.New(),
		RoomID:           b.roomID,
		RoomNumber:       "101",
		PrimaryGuestID:   b.primaryGuestID,
		PrimaryGuestName: b.primaryGuest.Name,
		CheckIn:          b.checkIn,
		CheckOut:         b.checkOut,
		NumberOfGuests:   b.numberOfGuests,
		TotalAmountCents: b.totalAmountCents,
		PaidAmountCents:  b.paidAmountCents,
		IsPaid:           b.paidAmountCents >= b.totalAmountCents,
		PaymentMethod:    b.paymentMethod,
		SpecialRequests:  b.specialRequests,
		Status:           string(reservation.StatusPending),
		Guests:           guests,
		CreatedAt:        b.now,
		UpdatedAt:        b.now,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:               uuid.New(),
		RoomID:           b.roomID,
		RoomNumber:       "101",
		PrimaryGuestName: b.primaryGuest.Name,
		CheckIn:          b.checkIn,
		CheckOut:         b.checkOut,
		NumberOfGuests:   b.numberOfGuests,
		TotalAmountCents: b.totalAmountCents,
		IsPaid:           b.paidAmountCents >= b.totalAmountCents,
		Status:           string(reservation.StatusPending),
		CreatedAt:        b.now,
	}
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	period, err := reservation.NewStayPeriod(b.checkIn, b.checkOut)
	if err != nil {
		return nil, err
	}
	totalAmount, err := reservation.NewMoney(b.totalAmountCents)
	if err != nil {
		return nil, err
	}
	paidAmount, err := reservation.NewMoney(b.paidAmountCents)
	if err != nil {
		return nil, err
	}

	return reservation.NewReservation(
		b.now,
		b.roomID,
		b.primaryGuestID,
		period,
		b.numberOfGuests,
		totalAmount,
		paidAmount,
		b.paymentMethod,
		b.specialRequests,
	)
}
