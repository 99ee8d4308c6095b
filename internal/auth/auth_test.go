package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	a := NewAuth("test-secret")

	access, refresh, err := a.GenerateTokens(42, RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := a.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserId)
	assert.Equal(t, RoleEmployee, claims.Role)
	assert.Equal(t, TypeAccess, claims.Type)

	refreshClaims, err := a.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, 42, refreshClaims.UserId)
	assert.Equal(t, TypeRefresh, refreshClaims.Type)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	a := NewAuth("test-secret")
	other := NewAuth("other-secret")

	access, _, err := a.GenerateTokens(1, RoleAdmin)
	require.NoError(t, err)

	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	a := NewAuth("test-secret")

	access, refresh, err := a.GenerateTokens(1, RoleAdmin)
	require.NoError(t, err)

	_, err = a.ValidateRefreshToken(access)
	assert.Error(t, err)

	// ValidateToken parses any signed token, the type check is the
	// caller's job
	claims, err := a.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TypeRefresh, claims.Type)
}

func TestAuthorized(t *testing.T) {
	claims := Claims{Role: RoleAdmin}

	assert.True(t, claims.Authorized(RoleAdmin))
	assert.True(t, claims.Authorized(RoleEmployee, RoleAdmin))
	assert.False(t, claims.Authorized(RoleEmployee))
	assert.False(t, claims.Authorized())
}

func TestGetClaims(t *testing.T) {
	_, err := GetClaims(context.Background())
	assert.Error(t, err)

	ctx := context.WithValue(context.Background(), Key, Claims{UserId: 7, Role: RoleEmployee})
	claims, err := GetClaims(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserId)
}
