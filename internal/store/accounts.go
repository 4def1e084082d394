package store

import (
	"context"

	"hemis/m/domain"
)

const accountColumns = `id, username, password_hash, full_name, email, role, active, created_at`

// AccountRepository is the credential store.
type AccountRepository struct {
	repo
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	var a domain.Account
	if err := r.get(ctx, &a, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var a domain.Account
	if err := r.get(ctx, &a, `SELECT `+accountColumns+` FROM accounts WHERE username = ?`, username); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var a domain.Account
	if err := r.get(ctx, &a, `SELECT `+accountColumns+` FROM accounts WHERE LOWER(email) = LOWER(?)`, email); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]domain.Account, error) {
	accounts := []domain.Account{}
	if err := r.list(ctx, &accounts, `SELECT `+accountColumns+` FROM accounts ORDER BY id`); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *AccountRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "accounts", id)
}

func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM accounts`)
}

// Save inserts a when it has no id yet and updates it otherwise.
func (r *AccountRepository) Save(ctx context.Context, a *domain.Account) error {
	if a.ID == 0 {
		id, err := r.insert(ctx, `INSERT INTO accounts (username, password_hash, full_name, email, role, active, created_at)
                VALUES (:username, :password_hash, :full_name, :email, :role, :active, :created_at) RETURNING id`, a)
		if err != nil {
			return err
		}
		a.ID = id
		return nil
	}
	return r.update(ctx, `UPDATE accounts SET username = :username, password_hash = :password_hash, full_name = :full_name,
                email = :email, role = :role, active = :active WHERE id = :id`, a)
}
