package impl

import (
	"io"
	"log/slog"
	"testing"

	"customo/internal/domain/entity"
	mockRepo "customo/internal/mocks/repository"
	mockSvc "customo/internal/mocks/service"
	"customo/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeUser(email string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "stored_hash",
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
}

func registerInput(email, password string) *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:    email,
		Password: password,
	}
}

func loginInput(email, password string) *usecase.LoginInput {
	return &usecase.LoginInput{
		Email:    email,
		Password: password,
	}
}

func changePasswordInput(current, next string) *usecase.ChangePasswordInput {
	return &usecase.ChangePasswordInput{
		CurrentPassword: current,
		NewPassword:     next,
	}
}

func profileInput(firstName, lastName, phone, company string) *usecase.UpdateProfileInput {
	return &usecase.UpdateProfileInput{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Company:   company,
	}
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}
