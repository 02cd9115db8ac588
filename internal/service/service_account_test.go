package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/threadboard/internal/config"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/mock"
	"github.com/MKhiriev/threadboard/internal/store"
	"github.com/MKhiriev/threadboard/internal/utils"
	"github.com/MKhiriev/threadboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPasswordIterations = 1000

func newTestAccountSvc(t *testing.T) (AccountService, *mock.MockAccountRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	svc := NewAccountService(repo, config.App{PasswordIterations: testPasswordIterations}, logger.Nop())
	return svc, repo
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAccountService_Register_Success(t *testing.T) {
	svc, repo := newTestAccountSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Account) (models.Account, error) {
			assert.Equal(t, "alice", a.Username)
			assert.Equal(t, "alice@example.com", a.Email)
			assert.Equal(t, models.RankMember, a.Rank)
			assert.NotEqual(t, "hunter2", a.PasswordHash)

			ok, err := utils.VerifyPassword("hunter2", a.PasswordHash)
			require.NoError(t, err)
			assert.True(t, ok)

			a.ID = 1
			return a, nil
		},
	)

	account, err := svc.Register(ctx, models.NewAccountRequest{
		Username: "  alice ",
		Password: "hunter2",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
}

func TestAccountService_Register_InvalidData(t *testing.T) {
	svc, _ := newTestAccountSvc(t)

	tests := []models.NewAccountRequest{
		{Password: "p", Email: "e"},
		{Username: "u", Email: "e"},
		{Username: "u", Password: "p"},
		{Username: "   ", Password: "p", Email: "e"},
	}

	for _, req := range tests {
		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	svc, repo := newTestAccountSvc(t)

	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
		Return(models.Account{}, &store.UsernameTakenError{Username: "bob"})

	_, err := svc.Register(context.Background(), models.NewAccountRequest{Username: "bob", Password: "p", Email: "b@example.com"})
	require.ErrorIs(t, err, store.ErrUsernameTaken)
	assert.EqualError(t, err, "The username bob is taken.")
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAccountService_Authenticate_Success(t *testing.T) {
	svc, repo := newTestAccountSvc(t)

	hash, err := utils.HashPassword("hunter2", testPasswordIterations)
	require.NoError(t, err)

	repo.EXPECT().FindAccountByEmail(gomock.Any(), "ALICE@example.com").
		Return(models.Account{ID: 7, Email: "alice@example.com", PasswordHash: hash}, nil)

	account, err := svc.Authenticate(context.Background(), " ALICE@example.com ", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, int64(7), account.ID)
}

func TestAccountService_Authenticate_WrongPassword(t *testing.T) {
	svc, repo := newTestAccountSvc(t)

	hash, err := utils.HashPassword("hunter2", testPasswordIterations)
	require.NoError(t, err)

	repo.EXPECT().FindAccountByEmail(gomock.Any(), "alice@example.com").
		Return(models.Account{ID: 7, PasswordHash: hash}, nil)

	_, err = svc.Authenticate(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAccountService_Authenticate_NotFound(t *testing.T) {
	svc, repo := newTestAccountSvc(t)

	repo.EXPECT().FindAccountByEmail(gomock.Any(), "nobody@example.com").
		Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "x")
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestAccountService_Authenticate_MalformedHash(t *testing.T) {
	svc, repo := newTestAccountSvc(t)

	repo.EXPECT().FindAccountByEmail(gomock.Any(), gomock.Any()).
		Return(models.Account{ID: 1, PasswordHash: "garbage"}, nil)

	_, err := svc.Authenticate(context.Background(), "a@example.com", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrMalformedPasswordHash))
	assert.False(t, errors.Is(err, ErrWrongPassword))
}

func TestAccountService_Authenticate_InvalidData(t *testing.T) {
	svc, _ := newTestAccountSvc(t)

	_, err := svc.Authenticate(context.Background(), "", "x")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Authenticate(context.Background(), "a@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAccountService_FindAccount(t *testing.T) {
	svc, repo := newTestAccountSvc(t)

	repo.EXPECT().FindAccountByID(gomock.Any(), int64(3)).Return(models.Account{ID: 3}, nil)

	account, err := svc.FindAccount(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), account.ID)
}
