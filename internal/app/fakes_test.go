package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
	"github.com/Vipul160305/placetrack/internal/domain/application"
	"github.com/Vipul160305/placetrack/internal/domain/listing"
)

type fakeAccountRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*account.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byID: make(map[common.UUID]*account.Account)}
}

func (r *fakeAccountRepo) Create(ctx context.Context, acc account.Account) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc.Email = strings.ToLower(strings.TrimSpace(acc.Email))
	for _, existing := range r.byID {
		if existing.Email == acc.Email {
			return nil, common.NewError(common.CodeConflict, "account already exists with this email", nil)
		}
	}
	acc.ID = common.NewUUID()
	now := time.Now().UTC()
	acc.CreatedAt = now
	acc.UpdatedAt = now
	r.byID[acc.ID] = &acc
	return cloneAccount(&acc), nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id common.UUID) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc := r.byID[id]
	if acc == nil {
		return nil, common.NewError(common.CodeNotFound, "account not found", nil)
	}
	return cloneAccount(acc), nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, acc := range r.byID {
		if acc.Email == email {
			return cloneAccount(acc), nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "account not found", nil)
}

func (r *fakeAccountRepo) Update(ctx context.Context, acc account.Account) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.byID[acc.ID]
	if stored == nil {
		return nil, common.NewError(common.CodeNotFound, "account not found", nil)
	}
	stored.Name = acc.Name
	stored.Branch = acc.Branch
	stored.CGPA = acc.CGPA
	stored.Skills = append([]string(nil), acc.Skills...)
	stored.UpdatedAt = time.Now().UTC()
	return cloneAccount(stored), nil
}

func (r *fakeAccountRepo) List(ctx context.Context, filter account.Filter) ([]account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []account.Account
	for _, acc := range r.byID {
		if filter.Role != "" && acc.Role != filter.Role {
			continue
		}
		if filter.NameSearch != "" && !strings.Contains(strings.ToLower(acc.Name), strings.ToLower(filter.NameSearch)) {
			continue
		}
		result = append(result, *cloneAccount(acc))
	}
	return result, nil
}

func (r *fakeAccountRepo) ListEligible(ctx context.Context, minCGPA float64, branches []account.Branch) ([]account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []account.Account
	for _, acc := range r.byID {
		if acc.Role != account.RoleStudent || acc.CGPA < minCGPA {
			continue
		}
		for _, branch := range branches {
			if acc.Branch == branch {
				result = append(result, *cloneAccount(acc))
				break
			}
		}
	}
	return result, nil
}

func (r *fakeAccountRepo) SetPlaced(ctx context.Context, id common.UUID, placed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc := r.byID[id]
	if acc == nil {
		return common.NewError(common.CodeNotFound, "account not found", nil)
	}
	acc.IsPlaced = placed
	return nil
}

func (r *fakeAccountRepo) SetResume(ctx context.Context, id common.UUID, resume string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc := r.byID[id]
	if acc == nil {
		return common.NewError(common.CodeNotFound, "account not found", nil)
	}
	acc.Resume = resume
	return nil
}

func (r *fakeAccountRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID[id] == nil {
		return common.NewError(common.CodeNotFound, "account not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func cloneAccount(acc *account.Account) *account.Account {
	copied := *acc
	copied.Skills = append([]string(nil), acc.Skills...)
	return &copied
}

type fakeListingRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*listing.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{byID: make(map[common.UUID]*listing.Listing)}
}

func (r *fakeListingRepo) Create(ctx context.Context, l listing.Listing) (*listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = common.NewUUID()
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	r.byID[l.ID] = &l
	return cloneListing(&l), nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id common.UUID) (*listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.byID[id]
	if l == nil {
		return nil, common.NewError(common.CodeNotFound, "listing not found", nil)
	}
	return cloneListing(l), nil
}

func (r *fakeListingRepo) ListAll(ctx context.Context) ([]listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []listing.Listing
	for _, l := range r.byID {
		result = append(result, *cloneListing(l))
	}
	return result, nil
}

func (r *fakeListingRepo) ListEligible(ctx context.Context, cgpa float64, branch account.Branch) ([]listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []listing.Listing
	for _, l := range r.byID {
		if l.MinCGPA > cgpa {
			continue
		}
		for _, b := range l.EligibleBranches {
			if b == branch {
				result = append(result, *cloneListing(l))
				break
			}
		}
	}
	return result, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, l listing.Listing) (*listing.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID[l.ID] == nil {
		return nil, common.NewError(common.CodeNotFound, "listing not found", nil)
	}
	l.UpdatedAt = time.Now().UTC()
	r.byID[l.ID] = &l
	return cloneListing(&l), nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID[id] == nil {
		return common.NewError(common.CodeNotFound, "listing not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func cloneListing(l *listing.Listing) *listing.Listing {
	copied := *l
	copied.EligibleBranches = append([]account.Branch(nil), l.EligibleBranches...)
	copied.RequiredSkills = append([]string(nil), l.RequiredSkills...)
	copied.Rounds = append([]listing.Round(nil), l.Rounds...)
	return &copied
}

type fakeApplicationRepo struct {
	mu sync.Mutex
	// Insertion order; reads return newest first like the store does.
	items []*application.Application
	// hideFinds makes FindByStudentAndListing miss, simulating a
	// racing applier that slipped past the pre-check.
	hideFinds bool
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.StudentID == app.StudentID && existing.ListingID == app.ListingID {
			return nil, common.NewError(common.CodeConflict, "already applied to this listing", nil)
		}
	}
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	r.items = append(r.items, &app)
	copied := app
	return &copied, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.items {
		if app.ID == id {
			copied := *app
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) FindByStudentAndListing(ctx context.Context, studentID, listingID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hideFinds {
		for _, app := range r.items {
			if app.StudentID == studentID && app.ListingID == listingID {
				copied := *app
				return &copied, nil
			}
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.Application, error) {
	return r.list(func(app *application.Application) bool { return app.StudentID == studentID }), nil
}

func (r *fakeApplicationRepo) ListByListing(ctx context.Context, listingID common.UUID) ([]application.Application, error) {
	return r.list(func(app *application.Application) bool { return app.ListingID == listingID }), nil
}

func (r *fakeApplicationRepo) ListAll(ctx context.Context) ([]application.Application, error) {
	return r.list(func(*application.Application) bool { return true }), nil
}

func (r *fakeApplicationRepo) list(match func(*application.Application) bool) []application.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []application.Application
	for i := len(r.items) - 1; i >= 0; i-- {
		if match(r.items[i]) {
			result = append(result, *r.items[i])
		}
	}
	return result
}

func (r *fakeApplicationRepo) Update(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.ID == app.ID {
			app.UpdatedAt = time.Now().UTC()
			stored := app
			r.items[i] = &stored
			copied := app
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) CountByStatus(ctx context.Context) (map[application.Status]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[application.Status]int)
	for _, app := range r.items {
		counts[app.Status]++
	}
	return counts, nil
}
