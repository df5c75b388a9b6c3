package auth

import (
	"context"
	"errors"

	"pocketsense-backend/domain"
	"pocketsense-backend/internal/utils/logger"
	"pocketsense-backend/pkg/jwt"
	"pocketsense-backend/pkg/student"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	AuthService interface {
		ObtainToken(ctx context.Context, req domain.TokenObtainRequest) (*domain.TokenResponse, error)
		RefreshToken(ctx context.Context, req domain.TokenRefreshRequest) (*domain.TokenResponse, error)
	}

	authService struct {
		studentRepository student.StudentRepository
		jwtService        jwt.JWTService
	}
)

func NewAuthService(studentRepository student.StudentRepository, jwtService jwt.JWTService) AuthService {
	return &authService{
		studentRepository: studentRepository,
		jwtService:        jwtService,
	}
}

func (s *authService) ObtainToken(ctx context.Context, req domain.TokenObtainRequest) (*domain.TokenResponse, error) {
	st, err := s.studentRepository.GetStudentByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(st.Password), []byte(req.Password)); err != nil {
		logger.GetLogger().Infow("Rejected login attempt", "username", req.Username)
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.jwtService.GenerateTokenPair(st.ID.String())
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// RefreshToken trades a valid refresh token for a new access token. The
// student must still exist.
func (s *authService) RefreshToken(ctx context.Context, req domain.TokenRefreshRequest) (*domain.TokenResponse, error) {
	studentID, err := s.jwtService.GetStudentIDByRefreshToken(req.Refresh)
	if err != nil {
		return nil, err
	}

	if _, err := s.studentRepository.GetStudentByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	access, err := s.jwtService.GenerateAccessToken(studentID)
	if err != nil {
		return nil, err
	}
	return &domain.TokenResponse{Access: access}, nil
}
