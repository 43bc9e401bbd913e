package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fieldesk/internal/shared/authorization"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carries the session identity inside a signed token. Simulated is
// true only for demonstration sessions, which never map to a stored profile
// and are rejected by every mutating endpoint.
type Claims struct {
	ProfileID uint               `json:"profile_id"`
	SessionID string             `json:"session_id"`
	Role      authorization.Role `json:"role"`
	ClientID  *uint              `json:"client_id,omitempty"`
	FullName  string             `json:"full_name,omitempty"`
	Simulated bool               `json:"simulated,omitempty"`
	TokenType TokenType          `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
	demoExpMinutes   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays, demoExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
		demoExpMinutes:   demoExpMinutes,
	}
}

// Generate issues an access/refresh pair for a real signed-in profile.
func (s *JWTService) Generate(profileID uint, sessionID string, role authorization.Role, clientID *uint) (*TokenPair, error) {
	now := time.Now().UTC()

	accessExp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)
	accessClaims := &Claims{
		ProfileID: profileID,
		SessionID: sessionID,
		Role:      role,
		ClientID:  clientID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessExp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshExp := now.Add(time.Duration(s.refreshExpDays) * 24 * time.Hour)
	refreshClaims := &Claims{
		ProfileID: profileID,
		SessionID: sessionID,
		Role:      role,
		ClientID:  clientID,
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(refreshExp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

// GenerateSimulated issues a short-lived access token for a demonstration
// session. There is no refresh token: when the demo window closes the
// session is simply gone.
func (s *JWTService) GenerateSimulated(sessionID string, role authorization.Role, clientID *uint, fullName string) (*TokenPair, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.demoExpMinutes) * time.Minute)

	claims := &Claims{
		SessionID: sessionID,
		Role:      role,
		ClientID:  clientID,
		FullName:  fullName,
		Simulated: true,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign demo token: %w", err)
	}

	return &TokenPair{
		AccessToken: tokenString,
		ExpiresIn:   int64(s.demoExpMinutes * 60),
	}, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Refresh rotates the pair: a valid refresh token yields a fresh access and
// refresh token. Simulated sessions never reach here because they carry no
// refresh token.
func (s *JWTService) Refresh(refreshTokenString string) (*TokenPair, error) {
	claims, err := s.Verify(refreshTokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	if claims.TokenType != TokenTypeRefresh {
		return nil, fmt.Errorf("token is not a refresh token")
	}
	if claims.Simulated {
		return nil, fmt.Errorf("demo sessions cannot be refreshed")
	}

	return s.Generate(claims.ProfileID, claims.SessionID, claims.Role, claims.ClientID)
}

// AccessExpMinutes returns the access token expiration time in minutes.
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
