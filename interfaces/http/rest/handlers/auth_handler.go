package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/omercangizik/AniKutusu1/internal/service/auth"
	"github.com/omercangizik/AniKutusu1/pkg/api"
	"github.com/omercangizik/AniKutusu1/pkg/utils"

	"go.uber.org/zap"
)

// AuthHandler handles login and registration requests.
type AuthHandler struct {
	svc    *auth.Service
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		api.FieldErrors(w, errs)
		return
	}

	result, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, h.logger, err, "Giriş yapılırken bir hata oluştu")
		return
	}

	api.Success(w, http.StatusOK, api.AuthResponse{
		Token: result.Token,
		User: api.UserResponse{
			UID:         result.User.UID,
			Email:       result.User.Email,
			DisplayName: result.User.DisplayName,
		},
	})
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "Geçersiz istek gövdesi")
		return
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		api.FieldErrors(w, errs)
		return
	}

	result, err := h.svc.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		respondServiceError(w, h.logger, err, "Kayıt olurken bir hata oluştu")
		return
	}

	api.Success(w, http.StatusCreated, api.AuthResponse{
		Token: result.Token,
		User: api.UserResponse{
			UID:         result.User.UID,
			Email:       result.User.Email,
			DisplayName: result.User.DisplayName,
		},
	})
}
