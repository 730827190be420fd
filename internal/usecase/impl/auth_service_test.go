package impl

import (
	"context"
	"testing"

	"customo/internal/domain/entity"
	domainerrors "customo/internal/domain/errors"
	"customo/internal/domain/repository"
	mockRepo "customo/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const txFnType = "func(repository.RepositoryFactory) error"

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := registerInput("new@example.com", "Password123!")

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			txUserRepo := mockRepo.NewMockUserRepository(t)
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.On("UserRepo").Return(txUserRepo)

			txUserRepo.On("FindByEmail", ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)
			txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	fx.tokenService.On("Issue", mock.AnythingOfType("uuid.UUID"), input.Email).
		Return("signed.token.value", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := registerInput("taken@example.com", "Password123!")

	existing := &entity.User{ID: uuid.New(), Email: input.Email}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			txUserRepo := mockRepo.NewMockUserRepository(t)
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.On("UserRepo").Return(txUserRepo)

			txUserRepo.On("FindByEmail", ctx, input.Email).Return(existing, nil)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrUserAlreadyExists)
		}).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

// A concurrent registration can slip between the existence check and the
// insert; the unique constraint turns that into ErrEmailTaken, which must
// surface as the same conflict as the pre-check.
func TestAuthService_Register_RaceLostOnInsert(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := registerInput("race@example.com", "Password123!")

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			txUserRepo := mockRepo.NewMockUserRepository(t)
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.On("UserRepo").Return(txUserRepo)

			txUserRepo.On("FindByEmail", ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)
			txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrEmailTaken)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrUserAlreadyExists)
		}).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := registerInput("new@example.com", "Password123!")

	fx.hasher.On("Hash", input.Password).Return("", errors.New("entropy source failed"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// No transaction and no token issuance once hashing fails.
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser("login@example.com")

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "Password123!", user.PasswordHash).Return(true)
	fx.tokenService.On("Issue", user.ID, user.Email).Return("signed.token.value", nil)

	output, err := fx.service.Login(ctx, loginInput(user.Email, "Password123!"))

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.Equal(t, user.Email, output.User.Email)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, loginInput("nobody@example.com", "Password123!"))

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser("login@example.com")

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "wrong-password", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, loginInput(user.Email, "wrong-password"))

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

// An inactive account with the correct password must be indistinguishable
// from a wrong password.
func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser("disabled@example.com")
	user.IsActive = false

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

	output, err := fx.service.Login(ctx, loginInput(user.Email, "Password123!"))

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

// A storage fault must not masquerade as bad credentials.
func TestAuthService_Login_StorageFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storageErr := domainerrors.NewStorageUnavailableError(errors.New("connection refused"), "")

	fx.userRepo.On("FindByEmail", ctx, "login@example.com").Return(nil, storageErr)

	output, err := fx.service.Login(ctx, loginInput("login@example.com", "Password123!"))

	require.Error(t, err)
	assert.Nil(t, output)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_UNAVAILABLE", appErr.ErrorCode())
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser("subject@example.com")

	fx.tokenService.On("ParseSubject", "valid.token").Return(user.ID, nil)
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	got, err := fx.service.Authenticate(ctx, "valid.token")

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
}

func TestAuthService_Authenticate_BadToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.On("ParseSubject", "tampered.token").
		Return(uuid.Nil, errors.New("signature is invalid"))

	got, err := fx.service.Authenticate(ctx, "tampered.token")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// A valid token whose subject was deleted after issuance is unauthorized,
// not a 404.
func TestAuthService_Authenticate_SubjectGone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.On("ParseSubject", "orphan.token").Return(userID, nil)
	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.Authenticate(ctx, "orphan.token")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser("change@example.com")
	input := changePasswordInput("Password123!", "NewPassword456!")

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.hasher.On("Check", input.CurrentPassword, user.PasswordHash).Return(true)
	fx.hasher.On("Hash", input.NewPassword).Return("new_hashed_password", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			txUserRepo := mockRepo.NewMockUserRepository(t)
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.On("UserRepo").Return(txUserRepo)

			reloaded := activeUser(user.Email)
			reloaded.ID = user.ID
			txUserRepo.On("FindByID", ctx, user.ID).Return(reloaded, nil)
			txUserRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.PasswordHash == "new_hashed_password"
			})).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, user.ID, input)

	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser("change@example.com")
	input := changePasswordInput("not-the-password", "NewPassword456!")

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.hasher.On("Check", input.CurrentPassword, user.PasswordHash).Return(false)

	err := fx.service.ChangePassword(ctx, user.ID, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_ChangePassword_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := changePasswordInput("Password123!", "NewPassword456!")

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.ChangePassword(ctx, userID, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAuthService_UpdateProfile_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser("profile@example.com")
	input := profileInput("Ada", "Lovelace", "+441234567890", "Analytical Engines Ltd")

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			txUserRepo := mockRepo.NewMockUserRepository(t)
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.On("UserRepo").Return(txUserRepo)

			txUserRepo.On("FindByID", ctx, user.ID).Return(user, nil)
			txUserRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.FirstName == "Ada" && u.Company == "Analytical Engines Ltd" &&
					u.Email == user.Email && u.Role == user.Role
			})).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, user.ID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.Equal(t, user.Email, updated.Email)
}

func TestAuthService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := profileInput("Ada", "Lovelace", "", "")

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			txUserRepo := mockRepo.NewMockUserRepository(t)
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.On("UserRepo").Return(txUserRepo)

			txUserRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrNotFound)
		}).
		Return(domainerrors.ErrNotFound.WrapMessage("user not found"))

	updated, err := fx.service.UpdateProfile(ctx, userID, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
