package auth

import (
	"context"
	"testing"
	"time"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils/logger"
	"pocketsense-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeStudents is an in-memory student store keyed by username.
type fakeStudents map[string]*entities.Student

func (f fakeStudents) CreateStudent(ctx context.Context, s *entities.Student) error {
	f[s.Username] = s
	return nil
}

func (f fakeStudents) GetStudentByID(ctx context.Context, id string) (*entities.Student, error) {
	for _, s := range f {
		if s.ID.String() == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeStudents) GetStudentByUsername(ctx context.Context, username string) (*entities.Student, error) {
	if s, ok := f[username]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeStudents) GetStudentsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Student, error) {
	return nil, nil
}

func (f fakeStudents) GetStudents(ctx context.Context, params domain.ListParams) ([]*entities.Student, int64, error) {
	return nil, 0, nil
}

func (f fakeStudents) UpdateStudent(ctx context.Context, s *entities.Student) error {
	return nil
}

func (f fakeStudents) DeleteStudent(ctx context.Context, id string) error {
	return nil
}

func newTestAuth(t *testing.T) (AuthService, fakeStudents, jwt.JWTService) {
	t.Helper()
	logger.SetLogger(zap.NewNop().Sugar())

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)

	students := fakeStudents{
		"asha": {ID: uuid.New(), Username: "asha", Password: string(hash)},
	}
	jwtService := jwt.NewJWTService("test-secret", time.Minute, time.Hour)
	return NewAuthService(students, jwtService), students, jwtService
}

func TestObtainToken(t *testing.T) {
	svc, students, jwtService := newTestAuth(t)

	pair, err := svc.ObtainToken(context.Background(), domain.TokenObtainRequest{Username: "asha", Password: "s3cret!"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Refresh)

	id, err := jwtService.GetStudentIDByToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, students["asha"].ID.String(), id)
}

func TestObtainToken_BadCredentials(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	_, err := svc.ObtainToken(context.Background(), domain.TokenObtainRequest{Username: "asha", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.ObtainToken(context.Background(), domain.TokenObtainRequest{Username: "nobody", Password: "s3cret!"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc, students, _ := newTestAuth(t)

	pair, err := svc.ObtainToken(ctx, domain.TokenObtainRequest{Username: "asha", Password: "s3cret!"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, domain.TokenRefreshRequest{Refresh: pair.Refresh})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Access)
	assert.Empty(t, refreshed.Refresh)

	_, err = svc.RefreshToken(ctx, domain.TokenRefreshRequest{Refresh: pair.Access})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	delete(students, "asha")
	_, err = svc.RefreshToken(ctx, domain.TokenRefreshRequest{Refresh: pair.Refresh})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
