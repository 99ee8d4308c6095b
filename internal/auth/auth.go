package auth

import (
	"context"
	"net/http"
	"time"

	"hrm/backend/foundation/web"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type ctxKey int

// Key is used to store/retrieve the claims from a context.Context.
const Key ctxKey = 1

type Claims struct {
	jwt.StandardClaims
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"type"`
}

// Authorized reports whether the claims carry one of the given roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}

	return false
}

type Auth struct {
	key []byte

	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuth(jwtKey string) *Auth {
	return &Auth{
		key:        []byte(jwtKey),
		accessTTL:  12 * time.Hour,
		refreshTTL: 30 * 24 * time.Hour,
	}
}

// GenerateTokens issues an access/refresh token pair for the user.
func (a *Auth) GenerateTokens(userID int, role string) (string, string, error) {
	access, err := a.sign(userID, role, TypeAccess, a.accessTTL)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refresh, err := a.sign(userID, role, TypeRefresh, a.refreshTTL)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return access, refresh, nil
}

func (a *Auth) sign(userID int, role, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
		UserId: userID,
		Role:   role,
		Type:   tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(a.key)
}

// ValidateToken checks that the token is signed by us and not expired.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}

// ValidateRefreshToken is ValidateToken restricted to refresh tokens.
func (a *Auth) ValidateRefreshToken(tokenStr string) (Claims, error) {
	claims, err := a.ValidateToken(tokenStr)
	if err != nil {
		return Claims{}, err
	}
	if claims.Type != TypeRefresh {
		return Claims{}, errors.New("not a refresh token")
	}

	return claims, nil
}

// GetClaims retrieves the authenticated claims stored by the middleware.
func GetClaims(ctx context.Context) (Claims, error) {
	claims, ok := ctx.Value(Key).(Claims)
	if !ok {
		return Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}

	return claims, nil
}
