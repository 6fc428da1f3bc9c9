package credential

import (
	"errors"
	"fmt"
	"time"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TTL is fixed; there is no refresh flow.
const TTL = 7 * 24 * time.Hour

const minSecretLength = 32

var (
	ErrEmptySecret = errors.New("credential: secret cannot be empty")
	ErrWeakSecret  = fmt.Errorf("credential: secret must be at least %d bytes", minSecretLength)
)

type Claims struct {
	UserID       string `json:"uid"`
	TenantID     string `json:"cid"`
	Role         string `json:"role"`
	DepartmentID string `json:"did,omitempty"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256 credentials for a single secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if len(secret) < minSecretLength {
		return nil, ErrWeakSecret
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Issue signs the principal with exp = now + TTL. JWT dates carry whole
// seconds, so now is truncated first and iat and exp stay exactly TTL apart.
func (c *Codec) Issue(p domain.Principal, now time.Time) (string, error) {
	now = now.Truncate(time.Second)
	claims := Claims{
		UserID:   p.UserID.String(),
		TenantID: p.TenantID.String(),
		Role:     string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	if p.HasDepartment() {
		claims.DepartmentID = p.DepartmentID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("credential.Issue: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry against now and returns exactly the
// embedded principal. It never touches storage.
func (c *Codec) Verify(token string, now time.Time) (domain.Principal, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Principal{}, autherrors.ErrExpiredCredential
		}
		return domain.Principal{}, autherrors.ErrInvalidCredential
	}

	return claims.principal()
}

func (c *Claims) principal() (domain.Principal, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return domain.Principal{}, autherrors.ErrInvalidCredential
	}
	tenantID, err := uuid.Parse(c.TenantID)
	if err != nil {
		return domain.Principal{}, autherrors.ErrInvalidCredential
	}
	role := domain.Role(c.Role)
	if !role.Valid() {
		return domain.Principal{}, autherrors.ErrInvalidCredential
	}

	p := domain.Principal{
		UserID:   userID,
		TenantID: tenantID,
		Role:     role,
	}
	if c.DepartmentID != "" {
		deptID, err := uuid.Parse(c.DepartmentID)
		if err != nil {
			return domain.Principal{}, autherrors.ErrInvalidCredential
		}
		p.DepartmentID = &deptID
	}
	return p, nil
}
