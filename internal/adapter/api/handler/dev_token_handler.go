package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"nebulamarket/internal/domain/entity"
	"nebulamarket/internal/domain/repository"
	"nebulamarket/internal/infrastructure/token"
	"nebulamarket/pkg/errors"
	"nebulamarket/pkg/response"
)

// DevTokenHandler mints bearer tokens for local development. It is only
// routed when ENVIRONMENT=development.
type DevTokenHandler struct {
	tokenManager *token.Manager
	userRepo     repository.UserRepository
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(tokenManager *token.Manager, userRepo repository.UserRepository) *DevTokenHandler {
	return &DevTokenHandler{
		tokenManager: tokenManager,
		userRepo:     userRepo,
	}
}

func SetupDevTokenHandler(tokenManager *token.Manager, userRepo repository.UserRepository) {
	devTokenHandler = NewDevTokenHandler(tokenManager, userRepo)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

type devTokenRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GenerateToken issues a token for the requested user, creating the account
// row first if it does not exist yet.
func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	var req devTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if req.UserID == "" {
		req.UserID = "user-demo-123"
	}
	if req.Username == "" {
		req.Username = "demo_user"
	}
	if req.Email == "" {
		req.Email = "demo@nebula.ai"
	}

	user, err := h.userRepo.GetByID(c.Request().Context(), req.UserID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return response.Error(c, err)
		}
		user = &entity.User{
			ID:            req.UserID,
			Username:      req.Username,
			Email:         req.Email,
			WalletBalance: 1000.0,
			SellerRating:  5.0,
			CreatedAt:     time.Now(),
		}
		if err := h.userRepo.Create(c.Request().Context(), user); err != nil {
			return response.Error(c, err)
		}
	}

	signed, err := h.tokenManager.Generate(user.ID)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to generate token", err))
	}

	return response.Success(c, map[string]interface{}{
		"token": signed,
		"user": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
