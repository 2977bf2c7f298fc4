package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
)

const accountColumns = `id, name, email, password_hash, role, branch, cgpa, skills, resume, is_placed, created_at, updated_at`

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, acc account.Account) (*account.Account, error) {
	acc.ID = common.NewUUID()
	acc.Email = strings.ToLower(strings.TrimSpace(acc.Email))
	now := time.Now().UTC()
	acc.CreatedAt = now
	acc.UpdatedAt = now
	if acc.Skills == nil {
		acc.Skills = []string{}
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO accounts (id, name, email, password_hash, role, branch, cgpa, skills, resume, is_placed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		acc.ID, acc.Name, acc.Email, acc.PasswordHash, acc.Role, acc.Branch, acc.CGPA, pq.Array(acc.Skills), acc.Resume, acc.IsPlaced, acc.CreatedAt, acc.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "account already exists with this email", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create account", err)
	}
	return &acc, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id common.UUID) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
	return scanAccount(row)
}

func (r *AccountRepository) Update(ctx context.Context, acc account.Account) (*account.Account, error) {
	acc.UpdatedAt = time.Now().UTC()
	if acc.Skills == nil {
		acc.Skills = []string{}
	}
	result, err := r.db.ExecContext(ctx, `UPDATE accounts SET name = $1, branch = $2, cgpa = $3, skills = $4, updated_at = $5 WHERE id = $6`,
		acc.Name, acc.Branch, acc.CGPA, pq.Array(acc.Skills), acc.UpdatedAt, acc.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update account", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "account not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, acc.ID)
}

func (r *AccountRepository) List(ctx context.Context, filter account.Filter) ([]account.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts`
	var conditions []string
	var args []any
	if filter.Role != "" {
		args = append(args, filter.Role)
		conditions = append(conditions, `role = $1`)
	}
	if filter.NameSearch != "" {
		args = append(args, "%"+filter.NameSearch+"%")
		if len(args) == 1 {
			conditions = append(conditions, `name ILIKE $1`)
		} else {
			conditions = append(conditions, `name ILIKE $2`)
		}
	}
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list accounts", err)
	}
	defer rows.Close()
	return collectAccounts(rows)
}

func (r *AccountRepository) ListEligible(ctx context.Context, minCGPA float64, branches []account.Branch) ([]account.Account, error) {
	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = string(b)
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts
		WHERE role = $1 AND cgpa >= $2 AND branch = ANY($3)
		ORDER BY created_at DESC`, account.RoleStudent, minCGPA, pq.Array(names))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list eligible students", err)
	}
	defer rows.Close()
	return collectAccounts(rows)
}

func (r *AccountRepository) SetPlaced(ctx context.Context, id common.UUID, placed bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE accounts SET is_placed = $1, updated_at = $2 WHERE id = $3`, placed, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update placement flag", err)
	}
	return nil
}

func (r *AccountRepository) SetResume(ctx context.Context, id common.UUID, resume string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE accounts SET resume = $1, updated_at = $2 WHERE id = $3`, resume, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update resume", err)
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete account", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "account not found", sql.ErrNoRows)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*account.Account, error) {
	var acc account.Account
	if err := row.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.Role, &acc.Branch, &acc.CGPA, pq.Array(&acc.Skills), &acc.Resume, &acc.IsPlaced, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "account not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load account", err)
	}
	return &acc, nil
}

func collectAccounts(rows *sql.Rows) ([]account.Account, error) {
	var items []account.Account
	for rows.Next() {
		var acc account.Account
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.Role, &acc.Branch, &acc.CGPA, pq.Array(&acc.Skills), &acc.Resume, &acc.IsPlaced, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan account", err)
		}
		items = append(items, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to read accounts", err)
	}
	return items, nil
}
