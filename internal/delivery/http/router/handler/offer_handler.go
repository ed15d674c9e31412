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

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler holds dependencies for offer management handlers.
// Every route requires an authenticated business; the acting business's ID
// comes from the auth middleware.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler.
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// CreateOfferRequest represents the request body for creating an offer.
type CreateOfferRequest struct {
	Title              string `json:"title" validate:"required"`
	Description        string `json:"description" validate:"required"`
	DiscountPercentage int    `json:"discount_percentage" validate:"required,min=1,max=90"`
	ValidUntil         string `json:"valid_until" validate:"required"`
}

// UpdateOfferRequest represents the request body for a partial offer update.
type UpdateOfferRequest struct {
	Title              *string `json:"title,omitempty"`
	Description        *string `json:"description,omitempty"`
	DiscountPercentage *int    `json:"discount_percentage,omitempty" validate:"omitempty,min=1,max=90"`
	ValidUntil         *string `json:"valid_until,omitempty"`
	IsActive           *bool   `json:"is_active,omitempty"`
}

// OfferView is the JSON projection of an offer.
type OfferView struct {
	ID                 string `json:"id"`
	BusinessID         string `json:"business_id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	DiscountPercentage int    `json:"discount_percentage"`
	ValidUntil         string `json:"valid_until"`
	IsActive           bool   `json:"is_active"`
}

func toOfferView(offer *entity.Offer) *OfferView {
	return &OfferView{
		ID:                 offer.ID,
		BusinessID:         offer.BusinessID,
		Title:              offer.Title,
		Description:        offer.Description,
		DiscountPercentage: offer.DiscountPercentage,
		ValidUntil:         offer.ValidUntil,
		IsActive:           offer.IsActive,
	}
}

func toOfferViews(offers []*entity.Offer) []*OfferView {
	views := make([]*OfferView, 0, len(offers))
	for _, offer := range offers {
		views = append(views, toOfferView(offer))
	}

	return views
}

// Create handles offer creation.
func (h *OfferHandler) Create(c echo.Context) error {
	businessID, ok := deliverycontext.GetBusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req CreateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	offer, err := h.offerUC.Create(c.Request().Context(), businessID, &usecase.CreateOfferInput{
		Title:              req.Title,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		ValidUntil:         req.ValidUntil,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toOfferView(offer), "Offer created successfully")
}

// List handles listing the acting business's offers, active or not.
func (h *OfferHandler) List(c echo.Context) error {
	businessID, ok := deliverycontext.GetBusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	offers, err := h.offerUC.ListForBusiness(c.Request().Context(), businessID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toOfferViews(offers), "Offers retrieved successfully")
}

// Get handles retrieving one owned offer.
func (h *OfferHandler) Get(c echo.Context) error {
	businessID, ok := deliverycontext.GetBusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	offer, err := h.offerUC.Get(c.Request().Context(), businessID, c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toOfferView(offer), "Offer retrieved successfully")
}

// Update handles a partial update of an owned offer.
func (h *OfferHandler) Update(c echo.Context) error {
	businessID, ok := deliverycontext.GetBusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req UpdateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	offer, err := h.offerUC.Update(c.Request().Context(), businessID, c.Param("id"), &usecase.UpdateOfferInput{
		Title:              req.Title,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		ValidUntil:         req.ValidUntil,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toOfferView(offer), "Offer updated successfully")
}

// Delete handles permanent removal of an owned offer.
func (h *OfferHandler) Delete(c echo.Context) error {
	businessID, ok := deliverycontext.GetBusinessID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	if err := h.offerUC.Delete(c.Request().Context(), businessID, c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Offer deleted successfully")
}
