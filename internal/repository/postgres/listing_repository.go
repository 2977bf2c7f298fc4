package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
	"github.com/Vipul160305/placetrack/internal/domain/listing"
)

const listingColumns = `id, company_name, role, package, description, location, min_cgpa, eligible_branches, required_skills, rounds, deadline, created_by, created_at, updated_at`

type ListingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, l listing.Listing) (*listing.Listing, error) {
	l.ID = common.NewUUID()
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	rounds, err := marshalRounds(l.Rounds)
	if err != nil {
		return nil, err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO listings (id, company_name, role, package, description, location, min_cgpa, eligible_branches, required_skills, rounds, deadline, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		l.ID, l.CompanyName, l.Role, l.Package, l.Description, l.Location, l.MinCGPA, pq.Array(branchNames(l.EligibleBranches)), pq.Array(l.RequiredSkills), rounds, l.Deadline, l.CreatedBy, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create listing", err)
	}
	return &l, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id common.UUID) (*listing.Listing, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
	return scanListing(row)
}

func (r *ListingRepository) ListAll(ctx context.Context) ([]listing.Listing, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+listingColumns+` FROM listings ORDER BY created_at DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list listings", err)
	}
	defer rows.Close()
	return collectListings(rows)
}

func (r *ListingRepository) ListEligible(ctx context.Context, cgpa float64, branch account.Branch) ([]listing.Listing, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+listingColumns+` FROM listings
		WHERE min_cgpa <= $1 AND $2 = ANY(eligible_branches)
		ORDER BY created_at DESC`, cgpa, string(branch))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list eligible listings", err)
	}
	defer rows.Close()
	return collectListings(rows)
}

func (r *ListingRepository) Update(ctx context.Context, l listing.Listing) (*listing.Listing, error) {
	l.UpdatedAt = time.Now().UTC()
	rounds, err := marshalRounds(l.Rounds)
	if err != nil {
		return nil, err
	}
	result, err := r.db.ExecContext(ctx, `UPDATE listings SET company_name = $1, role = $2, package = $3, description = $4, location = $5, min_cgpa = $6, eligible_branches = $7, required_skills = $8, rounds = $9, deadline = $10, updated_at = $11
		WHERE id = $12`,
		l.CompanyName, l.Role, l.Package, l.Description, l.Location, l.MinCGPA, pq.Array(branchNames(l.EligibleBranches)), pq.Array(l.RequiredSkills), rounds, l.Deadline, l.UpdatedAt, l.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update listing", err)
	}
	rowCount, err := result.RowsAffected()
	if err == nil && rowCount == 0 {
		return nil, common.NewError(common.CodeNotFound, "listing not found", sql.ErrNoRows)
	}
	return &l, nil
}

func (r *ListingRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete listing", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "listing not found", sql.ErrNoRows)
	}
	return nil
}

func scanListing(row rowScanner) (*listing.Listing, error) {
	var l listing.Listing
	var branches []string
	var rounds []byte
	if err := row.Scan(&l.ID, &l.CompanyName, &l.Role, &l.Package, &l.Description, &l.Location, &l.MinCGPA, pq.Array(&branches), pq.Array(&l.RequiredSkills), &rounds, &l.Deadline, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "listing not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load listing", err)
	}
	l.EligibleBranches = parseBranches(branches)
	if err := json.Unmarshal(rounds, &l.Rounds); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode listing rounds", err)
	}
	return &l, nil
}

func collectListings(rows *sql.Rows) ([]listing.Listing, error) {
	var items []listing.Listing
	for rows.Next() {
		var l listing.Listing
		var branches []string
		var rounds []byte
		if err := rows.Scan(&l.ID, &l.CompanyName, &l.Role, &l.Package, &l.Description, &l.Location, &l.MinCGPA, pq.Array(&branches), pq.Array(&l.RequiredSkills), &rounds, &l.Deadline, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan listing", err)
		}
		l.EligibleBranches = parseBranches(branches)
		if err := json.Unmarshal(rounds, &l.Rounds); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to decode listing rounds", err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to read listings", err)
	}
	return items, nil
}

func marshalRounds(rounds []listing.Round) ([]byte, error) {
	if rounds == nil {
		rounds = []listing.Round{}
	}
	encoded, err := json.Marshal(rounds)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode listing rounds", err)
	}
	return encoded, nil
}

func branchNames(branches []account.Branch) []string {
	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = string(b)
	}
	return names
}

func parseBranches(names []string) []account.Branch {
	branches := make([]account.Branch, len(names))
	for i, name := range names {
		branches[i] = account.Branch(name)
	}
	return branches
}
