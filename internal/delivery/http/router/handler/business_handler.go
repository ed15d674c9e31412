// Package handler contains the HTTP handlers of the API.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "promofinder/internal/delivery/context"
	"promofinder/internal/delivery/http/response"
	"promofinder/internal/domain/entity"
	"promofinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler holds dependencies for registration, login and profile handlers.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// RegisterRequest represents the request body for business registration.
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Name      string  `json:"name" validate:"required"`
	Password  string  `json:"password" validate:"required,min=8"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// LoginRequest represents the request body for business login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the response body of registration and login.
type AuthResponse struct {
	Business     *BusinessView `json:"business"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}

// BusinessView is the public projection of a business. The password hash
// never leaves the service.
type BusinessView struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toBusinessView(business *entity.Business) *BusinessView {
	return &BusinessView{
		ID:        business.ID,
		Email:     business.Email,
		Name:      business.Name,
		Phone:     business.Phone,
		Address:   business.Address,
		Latitude:  business.Latitude,
		Longitude: business.Longitude,
	}
}

// Register handles business registration.
func (h *BusinessHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.businessUC.Register(c.Request().Context(), &usecase.RegisterBusinessInput{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		Phone:     req.Phone,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, &AuthResponse{
		Business:     toBusinessView(result.Business),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, "Business registered successfully")
}

// Login handles business authentication.
func (h *BusinessHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.businessUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &AuthResponse{
		Business:     toBusinessView(result.Business),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, "Login successful")
}

// GetProfile returns the authenticated business's own record.
func (h *BusinessHandler) GetProfile(c echo.Context) error {
	businessID, ok := deliverycontext.GetBusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	business, err := h.businessUC.Profile(c.Request().Context(), businessID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toBusinessView(business), "Profile retrieved successfully")
}
