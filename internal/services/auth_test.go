package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/recipe-search/internal/models"
	"github.com/sbilibin2017/recipe-search/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockSessions := services.NewMockSearchSessionDeleter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockSessions)

	tests := []struct {
		name         string
		username     string
		password     string
		confirmation string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
		expectRead   bool
	}{
		{
			name:         "successful registration",
			username:     "alice",
			password:     "pass123",
			confirmation: "pass123",
			expectRead:   true,
		},
		{
			name:         "user already exists",
			username:     "bob",
			password:     "pass123",
			confirmation: "pass123",
			existingUser: &models.UserDB{ID: 7, Username: "bob"},
			wantErr:      services.ErrUserAlreadyExists,
			expectRead:   true,
		},
		{
			name:         "reader error",
			username:     "eve",
			password:     "pass123",
			confirmation: "pass123",
			readerErr:    errors.New("db error"),
			wantErr:      errors.New("db error"),
			expectRead:   true,
		},
		{
			name:         "writer error",
			username:     "carol",
			password:     "pass123",
			confirmation: "pass123",
			writerErr:    errors.New("save error"),
			wantErr:      errors.New("save error"),
			expectRead:   true,
		},
		{
			name:         "username taken between check and insert",
			username:     "frank",
			password:     "pass123",
			confirmation: "pass123",
			writerErr:    models.ErrUserAlreadyExists,
			wantErr:      services.ErrUserAlreadyExists,
			expectRead:   true,
		},
		{
			name:         "empty username",
			password:     "pass123",
			confirmation: "pass123",
			wantErr:      services.ErrValidation,
		},
		{
			name:     "empty password",
			username: "dan",
			wantErr:  services.ErrValidation,
		},
		{
			name:         "confirmation mismatch",
			username:     "dan",
			password:     "pass123",
			confirmation: "pass124",
			wantErr:      services.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectRead {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), tt.username).
					Return(tt.existingUser, tt.readerErr)
			}

			if tt.expectRead && tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, hash string) error {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						return tt.writerErr
					})
			}

			err := svc.Register(context.Background(), tt.username, tt.password, tt.confirmation)
			if errors.Is(tt.wantErr, services.ErrUserAlreadyExists) {
				assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
			} else if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockSessions := services.NewMockSearchSessionDeleter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockSessions)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	tests := []struct {
		name      string
		username  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			username:  "alice",
			user:      &models.UserDB{ID: 1, Username: "alice", Password: string(hashed)},
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "user does not exist",
			username:  "bob",
			wantErr:   services.ErrUserDoesNotExist,
			loginPass: password,
		},
		{
			name:      "invalid password",
			username:  "carol",
			user:      &models.UserDB{ID: 3, Username: "carol", Password: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			username:  "eve",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			username:  "dan",
			user:      &models.UserDB{ID: 4, Username: "dan", Password: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, sessionID string) (string, error) {
						assert.NotEmpty(t, sessionID)
						return tt.expectJWT, tt.jwtErr
					})
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockJWTGenerator(ctrl),
		services.NewMockSearchSessionDeleter(ctrl),
	)

	_, err := svc.Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := services.NewMockSearchSessionDeleter(ctrl)
	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockJWTGenerator(ctrl),
		mockSessions,
	)

	ctx := context.Background()

	mockSessions.EXPECT().Delete(ctx, "sess-1").Return(nil)
	assert.NoError(t, svc.Logout(ctx, "sess-1"))

	mockSessions.EXPECT().Delete(ctx, "sess-2").Return(errors.New("redis down"))
	assert.EqualError(t, svc.Logout(ctx, "sess-2"), "redis down")

	// no session, nothing to delete
	assert.NoError(t, svc.Logout(ctx, ""))
}
