package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const stateAudience = "slack-install"

// AuthService issues and validates HS256 tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	EmployeeID     uuid.UUID `json:"employee_id" example:"3f0c3d7e-8f5b-4a43-9a67-0a4c9f7c2b11"`
	OrganisationID uuid.UUID `json:"organisation_id" example:"6a1e2b8d-7a0f-4a3e-8c1d-1f2e3d4c5b6a"`
	Email          string    `json:"email" example:"jane.doe@acme.io"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// StateClaims carries the organisation through the Slack OAuth round trip
type StateClaims struct {
	OrganisationID uuid.UUID `json:"organisation_id"`
	EmployeeID     uuid.UUID `json:"employee_id"`
	jwt.RegisteredClaims
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, now: time.Now}, nil
}

// GenerateJWT creates an access token for an employee
func (s *AuthService) GenerateJWT(employeeID, organisationID uuid.UUID, email string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		EmployeeID:     employeeID,
		OrganisationID: organisationID,
		Email:          email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   employeeID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, s.keyFunc,
		jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.EmployeeID == uuid.Nil || claims.OrganisationID == uuid.Nil {
		return nil, fmt.Errorf("token is missing employee or organisation")
	}
	return claims, nil
}

// GenerateState signs a short-lived OAuth state bound to the organisation
func (s *AuthService) GenerateState(organisationID, employeeID uuid.UUID) (string, error) {
	now := s.now()
	claims := &StateClaims{
		OrganisationID: organisationID,
		EmployeeID:     employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.StateTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Audience:  jwt.ClaimStrings{stateAudience},
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWTSecret))
}

// ValidateState verifies a state produced by GenerateState
func (s *AuthService) ValidateState(state string) (*StateClaims, error) {
	token, err := jwt.ParseWithClaims(state, &StateClaims{}, s.keyFunc,
		jwt.WithIssuer(s.config.Issuer), jwt.WithAudience(stateAudience), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse state: %w", err)
	}
	claims, ok := token.Claims.(*StateClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid state")
	}
	return claims, nil
}

func (s *AuthService) keyFunc(token *jwt.Token) (interface{}, error) {
	// Verify signing method
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(s.config.JWTSecret), nil
}
