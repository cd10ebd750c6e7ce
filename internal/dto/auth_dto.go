package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterCompanyRequest struct {
	CompanyName     string `json:"company_name" validate:"required,max=255"`
	CompanyHostname string `json:"company_hostname" validate:"required,hostname,max=255"`
	OwnerUsername   string `json:"owner_username" validate:"required,max=100"`
	OwnerEmail      string `json:"owner_email" validate:"required,email"`
	OwnerPassword   string `json:"owner_password" validate:"required,min=8"`
}

type RegisterCompanyResponse struct {
	Company CompanyResponse `json:"company"`
	Owner   UserResponse    `json:"owner"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type CompanyResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Hostname  string    `json:"hostname"`
	CreatedAt time.Time `json:"created_at"`
}
