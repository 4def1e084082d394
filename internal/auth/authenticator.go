package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hemis/m/domain"
)

// AccountFinder is the slice of the credential store the login flow needs.
type AccountFinder interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
}

type LoginResult struct {
	Token    string      `json:"token"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	FullName string      `json:"full_name"`
}

type Authenticator struct {
	accounts AccountFinder
	hasher   *Hasher
	tokens   *TokenIssuer
	logger   *zap.Logger
}

func NewAuthenticator(accounts AccountFinder, hasher *Hasher, tokens *TokenIssuer, logger *zap.Logger) *Authenticator {
	return &Authenticator{accounts: accounts, hasher: hasher, tokens: tokens, logger: logger}
}

// Login verifies the credentials and issues a token. Unknown usernames and
// wrong secrets both yield domain.ErrInvalidCredentials; a deactivated
// account yields domain.ErrAccountInactive.
func (a *Authenticator) Login(ctx context.Context, username, secret string) (*LoginResult, error) {
	account, err := a.accounts.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		a.logger.Warn("login rejected: unknown username", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("login lookup failed", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if !account.Active {
		a.logger.Warn("login rejected: account inactive", zap.Int64("account_id", account.ID))
		return nil, domain.ErrAccountInactive
	}

	if !a.hasher.Check(secret, account.PasswordHash) {
		a.logger.Warn("login rejected: wrong password", zap.Int64("account_id", account.ID))
		return nil, domain.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(account.ID, account.Username, account.Role)
	if err != nil {
		a.logger.Error("failed to issue token", zap.Int64("account_id", account.ID), zap.Error(err))
		return nil, err
	}

	a.logger.Info("login succeeded", zap.Int64("account_id", account.ID), zap.String("role", string(account.Role)))
	return &LoginResult{
		Token:    token,
		Username: account.Username,
		Role:     account.Role,
		FullName: account.FullName,
	}, nil
}
