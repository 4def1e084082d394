package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hemis/m/domain"
)

func (s *Service) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.FindAll(ctx)
}

func (s *Service) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

// CreateAccount registers a new active account with a hashed secret.
func (s *Service) CreateAccount(ctx context.Context, in domain.Account, password string) (*domain.Account, error) {
	a := in
	normalizeAccount(&a)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if err := s.ensureUsernameFree(ctx, a.Username, 0); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, a.Email, 0); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	a.ID = 0
	a.PasswordHash = hash
	a.Active = true
	a.CreatedAt = s.now()
	if err := s.accounts.Save(ctx, &a); err != nil {
		return nil, err
	}
	s.logger.Info("account created", zap.Int64("account_id", a.ID), zap.String("role", string(a.Role)))
	return &a, nil
}

// UpdateAccount replaces the profile of account id. An empty password keeps
// the stored hash.
func (s *Service) UpdateAccount(ctx context.Context, id int64, in domain.Account, password string) (*domain.Account, error) {
	existing, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a := in
	normalizeAccount(&a)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if a.Username != existing.Username {
		if err := s.ensureUsernameFree(ctx, a.Username, id); err != nil {
			return nil, err
		}
	}
	if err := s.ensureEmailFree(ctx, a.Email, id); err != nil {
		return nil, err
	}

	a.PasswordHash = existing.PasswordHash
	if password != "" {
		if a.PasswordHash, err = s.hasher.Hash(password); err != nil {
			return nil, err
		}
	}
	a.ID = id
	a.Active = existing.Active
	a.CreatedAt = existing.CreatedAt
	if err := s.accounts.Save(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeactivateAccount is the only delete accounts support.
func (s *Service) DeactivateAccount(ctx context.Context, id int64) error {
	a, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !a.Active {
		return nil
	}
	a.Active = false
	if err := s.accounts.Save(ctx, a); err != nil {
		return err
	}
	s.logger.Info("account deactivated", zap.Int64("account_id", id))
	return nil
}

func (s *Service) ToggleAccountActive(ctx context.Context, id int64) (*domain.Account, error) {
	a, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Active = !a.Active
	if err := s.accounts.Save(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("account active flag toggled", zap.Int64("account_id", id), zap.Bool("active", a.Active))
	return a, nil
}

func normalizeAccount(a *domain.Account) {
	a.Username = strings.TrimSpace(a.Username)
	if a.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*a.Email))
		if email == "" {
			a.Email = nil
		} else {
			a.Email = &email
		}
	}
}

func (s *Service) ensureUsernameFree(ctx context.Context, username string, selfID int64) error {
	other, err := s.accounts.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if other.ID != selfID {
		return fmt.Errorf("%w: username already exists", domain.ErrDuplicateKey)
	}
	return nil
}

func (s *Service) ensureEmailFree(ctx context.Context, email *string, selfID int64) error {
	if email == nil {
		return nil
	}
	other, err := s.accounts.FindByEmail(ctx, *email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if other.ID != selfID {
		return fmt.Errorf("%w: email already exists", domain.ErrDuplicateKey)
	}
	return nil
}
