package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/threadboard/internal/config"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/store"
	"github.com/MKhiriev/threadboard/internal/utils"
	"github.com/MKhiriev/threadboard/models"
)

// accountService is the concrete implementation of AccountService. Passwords
// are stored as PBKDF2-SHA256 hashes.
type accountService struct {
	accountRepository store.AccountRepository

	// passwordIterations is the PBKDF2 cost for newly created hashes.
	passwordIterations int

	logger *logger.Logger
}

func NewAccountService(accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository:  accountRepository,
		passwordIterations: cfg.PasswordIterations,
		logger:             logger,
	}
}

// Register validates req, hashes the password and stores a new account with
// rank Member.
//
// Errors: ErrInvalidDataProvided for empty fields, otherwise whatever the
// repository returns (*store.UsernameTakenError, store.ErrEmailTaken, ...).
func (a *accountService) Register(ctx context.Context, req models.NewAccountRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		log.Error().Str("username", username).Str("email", email).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password, a.passwordIterations)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Rank:         models.RankMember,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("account creation ended with error")
		return models.Account{}, err
	}

	log.Info().Int64("account_id", account.ID).Str("username", account.Username).Msg("account registered")
	return account, nil
}

// Authenticate looks the account up by email and checks the password.
//
// Errors: ErrInvalidDataProvided, store.ErrAccountNotFound, ErrWrongPassword.
func (a *accountService) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			log.Err(err).Msg("account search by email failed")
		}
		return models.Account{}, err
	}

	ok, err := utils.VerifyPassword(password, account.PasswordHash)
	if err != nil {
		log.Err(err).Int64("account_id", account.ID).Msg("stored password hash is unusable")
		return models.Account{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Int64("account_id", account.ID).Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	return account, nil
}

func (a *accountService) FindAccount(ctx context.Context, id int64) (models.Account, error) {
	return a.accountRepository.FindAccountByID(ctx, id)
}
