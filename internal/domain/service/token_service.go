package service

import "time"

// TokenService issues and validates the tokens that identify an
// authenticated business to the delivery layer. The core only ever sees the
// resulting business ID as an opaque string.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a business.
	GenerateTokens(businessID string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns the business ID it carries.
	ValidateAccessToken(tokenString string) (businessID string, err error)

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
