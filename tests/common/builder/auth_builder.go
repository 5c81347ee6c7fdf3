//go:build unit || e2e

package builder

import (
	"hotelcore/internal/handler/dto/request"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthBuilder struct {
	email    string
	password string
	name     string
	role     string
	isActive bool
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		email:    "manager@example.com",
		password: "password123",
		name:     "Front Desk Manager",
		role:     "manager",
		isActive: true,
	}
}

func (b *AuthBuilder) WithEmail(email string) *AuthBuilder {
	b.email = email
	return b
}

func (b *AuthBuilder) WithPassword(password string) *AuthBuilder {
	b.password = password
	return b
}

func (b *AuthBuilder) WithRole(role string) *AuthBuilder {
	b.role = role
	return b
}

func (b *AuthBuilder) WithInactive() *AuthBuilder {
	b.isActive = false
	return b
}

func (b *AuthBuilder) BuildDTO() request.LoginRequest {
	return request.LoginRequest{
		Email:    b.email,
		Password: b.password,
	}
}

func (b *AuthBuilder) BuildStaffView() *queries.AuthorizedStaffView {
	return &queries.AuthorizedStaffView{
		ID:       uuid.New(),
		Email:    b.email,
		Name:     b.name,
		Role:     b.role,
		IsActive: b.isActive,
	}
}
