package handler

import "github.com/talenthub/job-portal-api/internal/core/domain"

type signupRequest struct {
	Name        string `json:"name"         validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=6"`
	Role        string `json:"role"         validate:"required,oneof=jobseeker employer"`
	CompanyName string `json:"company_name"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=jobseeker employer"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type profileResponse struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	CompanyName  string `json:"company_name,omitempty"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
	Resume       string `json:"resume,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
