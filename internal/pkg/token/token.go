// Package token issues and verifies the signed bearer tokens used by the API.
// Access and refresh tokens share one HS256 secret; refresh tokens carry a
// type=refresh claim and a longer validity window.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const refreshTokenType = "refresh"

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrMissingClaims = errors.New("token is missing required claims")
	ErrWrongKind     = errors.New("token kind not accepted here")
)

// Claims carries the doctor identity. Subject holds the doctor's email.
type Claims struct {
	jwt.RegisteredClaims
	DoctorID  string `json:"doctor_id"`
	TokenType string `json:"type,omitempty"`
}

func (c *Claims) IsRefresh() bool {
	return c.TokenType == refreshTokenType
}

// Manager signs and verifies tokens with a process-wide secret loaded at startup.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

func (m *Manager) IssueAccess(email string, doctorID uuid.UUID) (string, error) {
	return m.sign(email, doctorID, m.accessTTL, "")
}

func (m *Manager) IssueRefresh(email string, doctorID uuid.UUID) (string, error) {
	return m.sign(email, doctorID, m.refreshTTL, refreshTokenType)
}

func (m *Manager) sign(email string, doctorID uuid.UUID, ttl time.Duration, kind string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		DoctorID:  doctorID.String(),
		TokenType: kind,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks signature and expiry and requires the doctor_id claim. It does NOT
// distinguish access from refresh tokens; callers that accept only one kind must use
// VerifyAccess or VerifyRefresh.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.DoctorID == "" || claims.Subject == "" {
		return nil, ErrMissingClaims
	}
	return claims, nil
}

// VerifyAccess rejects refresh tokens presented where an access token is expected.
func (m *Manager) VerifyAccess(tokenString string) (*Claims, error) {
	claims, err := m.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.IsRefresh() {
		return nil, ErrWrongKind
	}
	return claims, nil
}

// VerifyRefresh accepts only tokens minted by IssueRefresh.
func (m *Manager) VerifyRefresh(tokenString string) (*Claims, error) {
	claims, err := m.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefresh() {
		return nil, ErrWrongKind
	}
	return claims, nil
}
