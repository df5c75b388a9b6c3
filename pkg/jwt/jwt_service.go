package jwt

import (
	"errors"
	"fmt"
	"time"

	"pocketsense-backend/domain"

	"github.com/golang-jwt/jwt/v4"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type (
	JWTService interface {
		GenerateTokenPair(studentID string) (domain.TokenResponse, error)
		GenerateAccessToken(studentID string) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetStudentIDByToken(token string) (string, error)
		GetStudentIDByRefreshToken(token string) (string, error)
	}

	jwtStudentClaim struct {
		StudentID string `json:"student_id"`
		TokenType string `json:"token_type"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey  string
		issuer     string
		accessTTL  time.Duration
		refreshTTL time.Duration
	}
)

func NewJWTService(secretKey string, accessTTL, refreshTTL time.Duration) JWTService {
	return &jwtService{
		secretKey:  secretKey,
		issuer:     "POCKETSENSE",
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (j *jwtService) generate(studentID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtStudentClaim{
		studentID,
		tokenType,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) GenerateAccessToken(studentID string) (string, error) {
	return j.generate(studentID, tokenTypeAccess, j.accessTTL)
}

func (j *jwtService) GenerateTokenPair(studentID string) (domain.TokenResponse, error) {
	access, err := j.GenerateAccessToken(studentID)
	if err != nil {
		return domain.TokenResponse{}, err
	}
	refresh, err := j.generate(studentID, tokenTypeRefresh, j.refreshTTL)
	if err != nil {
		return domain.TokenResponse{}, err
	}
	return domain.TokenResponse{Access: access, Refresh: refresh}, nil
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtStudentClaim{}, j.parseToken)
}

func (j *jwtService) studentIDFor(token, tokenType string) (string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtStudentClaim)
	if claims.TokenType != tokenType || claims.StudentID == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.StudentID, nil
}

func (j *jwtService) GetStudentIDByToken(token string) (string, error) {
	return j.studentIDFor(token, tokenTypeAccess)
}

func (j *jwtService) GetStudentIDByRefreshToken(token string) (string, error) {
	return j.studentIDFor(token, tokenTypeRefresh)
}
