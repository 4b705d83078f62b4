// Package api defines the contracts for API requests and responses.
// It decouples the API structure from the internal domain models.
package api

import (
	"encoding/json"
	"net/http"
)

// LoginRequest is the expected body for a POST /api/auth/login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the expected body for a POST /api/auth/register request.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"required"`
}

// UserResponse is the API representation of an authenticated user.
type UserResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MemoryResponse is the API representation of a single memory record.
type MemoryResponse struct {
	MemoryID    string  `json:"memoryId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	PhotoURL    *string `json:"photoUrl"`
	CreatedAt   string  `json:"createdAt"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a standardized error message for API responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError describes a single invalid request field. The "msg" key matches
// what the browser client reads from validation responses.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// FieldErrorsResponse is the body of a 400 validation failure.
type FieldErrorsResponse struct {
	Errors []FieldError `json:"errors"`
}

// Success writes a JSON response with the given status code.
func Success(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Error writes a standardized JSON error response.
func Error(w http.ResponseWriter, statusCode int, message string) {
	Success(w, statusCode, ErrorResponse{Error: message})
}

// FieldErrors writes a 400 response with itemized field errors.
func FieldErrors(w http.ResponseWriter, errs []FieldError) {
	Success(w, http.StatusBadRequest, FieldErrorsResponse{Errors: errs})
}
