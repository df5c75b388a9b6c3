package jwt

import (
	"testing"
	"time"

	"pocketsense-backend/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPair(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)

	pair, err := svc.GenerateTokenPair("student-1")
	require.NoError(t, err)

	id, err := svc.GetStudentIDByToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "student-1", id)

	id, err = svc.GetStudentIDByRefreshToken(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, "student-1", id)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)
	pair, err := svc.GenerateTokenPair("student-1")
	require.NoError(t, err)

	_, err = svc.GetStudentIDByToken(pair.Refresh)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = svc.GetStudentIDByRefreshToken(pair.Access)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", -time.Minute, time.Hour)
	token, err := svc.GenerateAccessToken("student-1")
	require.NoError(t, err)

	_, err = svc.GetStudentIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestForeignSignature(t *testing.T) {
	other := NewJWTService("another-secret", time.Minute, time.Hour)
	token, err := other.GenerateAccessToken("student-1")
	require.NoError(t, err)

	svc := NewJWTService("secret", time.Minute, time.Hour)
	_, err = svc.GetStudentIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestRejectsNoneAlgorithm(t *testing.T) {
	claims := jwtStudentClaim{
		StudentID: "student-1",
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := NewJWTService("secret", time.Minute, time.Hour)
	_, err = svc.GetStudentIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
