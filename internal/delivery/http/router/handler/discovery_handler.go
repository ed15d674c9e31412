package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"promofinder/internal/delivery/http/response"
	"promofinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler serves the public, unauthenticated discovery API.
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler.
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// NearbyOfferView is one entry of the nearby-offers response.
type NearbyOfferView struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	DiscountPercentage int     `json:"discount_percentage"`
	ValidUntil         string  `json:"valid_until"`
	BusinessName       string  `json:"business_name"`
	BusinessAddress    string  `json:"business_address"`
	BusinessPhone      string  `json:"business_phone"`
	BusinessLat        float64 `json:"business_lat"`
	BusinessLng        float64 `json:"business_lng"`
	Distance           float64 `json:"distance"`
}

// NearbyOffersResponse is the response body of the nearby-offers query.
type NearbyOffersResponse struct {
	Offers []*NearbyOfferView `json:"offers"`
	Count  int                `json:"count"`
}

// BusinessListingView is one entry of the public businesses listing.
type BusinessListingView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	OffersCount int     `json:"offers_count"`
}

// ProximityView is the response body of the near-business check.
type ProximityView struct {
	BusinessID string  `json:"business_id"`
	Distance   float64 `json:"distance"`
	IsNearby   bool    `json:"is_nearby"`
}

// NearbyOffers handles GET /api/nearby_offers?lat=..&lng=..&radius=..
// The radius defaults to the configured discovery radius when omitted.
func (h *DiscoveryHandler) NearbyOffers(c echo.Context) error {
	lat, lng, err := parseLatLng(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_LOCATION", "A valid latitude and longitude are required")
	}

	var radius float64
	if raw := c.QueryParam("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "Radius must be a number of meters")
		}
	}

	matches, err := h.discoveryUC.NearbyOffers(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return err
	}

	views := make([]*NearbyOfferView, 0, len(matches))
	for _, match := range matches {
		views = append(views, &NearbyOfferView{
			ID:                 match.Offer.ID,
			Title:              match.Offer.Title,
			Description:        match.Offer.Description,
			DiscountPercentage: match.Offer.DiscountPercentage,
			ValidUntil:         match.Offer.ValidUntil,
			BusinessName:       match.Business.Name,
			BusinessAddress:    match.Business.Address,
			BusinessPhone:      match.Business.Phone,
			BusinessLat:        match.Business.Latitude,
			BusinessLng:        match.Business.Longitude,
			Distance:           roundToCentimeters(match.DistanceMeters),
		})
	}

	return response.Success(c, http.StatusOK, &NearbyOffersResponse{
		Offers: views,
		Count:  len(views),
	}, "Nearby offers retrieved successfully")
}

// ListBusinesses handles GET /api/businesses.
func (h *DiscoveryHandler) ListBusinesses(c echo.Context) error {
	listings, err := h.discoveryUC.ListBusinesses(c.Request().Context())
	if err != nil {
		return err
	}

	views := make([]*BusinessListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, &BusinessListingView{
			ID:          listing.Business.ID,
			Name:        listing.Business.Name,
			Address:     listing.Business.Address,
			Phone:       listing.Business.Phone,
			Latitude:    listing.Business.Latitude,
			Longitude:   listing.Business.Longitude,
			OffersCount: listing.ActiveOfferCount,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{"businesses": views}, "Businesses retrieved successfully")
}

// Proximity handles GET /api/businesses/:id/proximity?lat=..&lng=..
func (h *DiscoveryHandler) Proximity(c echo.Context) error {
	lat, lng, err := parseLatLng(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_LOCATION", "A valid latitude and longitude are required")
	}

	result, err := h.discoveryUC.IsUserNearBusiness(c.Request().Context(), lat, lng, c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &ProximityView{
		BusinessID: result.Business.ID,
		Distance:   roundToCentimeters(result.DistanceMeters),
		IsNearby:   result.IsNearby,
	}, "Proximity check completed")
}

// parseLatLng reads the lat/lng query parameters. Missing or unparseable
// values come back as 0, which the usecase rejects as the unset sentinel.
func parseLatLng(c echo.Context) (float64, float64, error) {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		lat = 0
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		lng = 0
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return 0, 0, errWrongCoordinate
	}

	return lat, lng, nil
}

var errWrongCoordinate = echo.NewHTTPError(http.StatusBadRequest, "invalid coordinate")

// roundToCentimeters rounds a distance to 2 decimal places for the wire.
func roundToCentimeters(meters float64) float64 {
	return math.Round(meters*100) / 100
}
