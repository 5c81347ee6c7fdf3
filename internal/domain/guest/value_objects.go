package guest

import "errors"

var ErrInvalidIdentityNumber = errors.New("identity number must be exactly 11 characters")

// IdentityNumber is the fixed-format national ID used as the guest's natural
// key. Lookups are format-literal: no trimming, casing or other normalization
// is applied, so two values match only byte for byte.
type IdentityNumber struct {
	value string
}

func NewIdentityNumber(value string) (IdentityNumber, error) {
	if len(value) != 11 {
		return IdentityNumber{}, ErrInvalidIdentityNumber
	}
	return IdentityNumber{value: value}, nil
}

func (n IdentityNumber) String() string {
	return n.value
}

type ContactInfo struct {
	Email   string
	Phone   string
	Address string
}
