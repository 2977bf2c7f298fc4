package account

import (
	"context"

	"github.com/Vipul160305/placetrack/internal/common"
)

type Filter struct {
	Role       Role
	NameSearch string
}

type Repository interface {
	Create(ctx context.Context, acc Account) (*Account, error)
	GetByID(ctx context.Context, id common.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	Update(ctx context.Context, acc Account) (*Account, error)
	List(ctx context.Context, filter Filter) ([]Account, error)
	ListEligible(ctx context.Context, minCGPA float64, branches []Branch) ([]Account, error)
	SetPlaced(ctx context.Context, id common.UUID, placed bool) error
	SetResume(ctx context.Context, id common.UUID, resume string) error
	Delete(ctx context.Context, id common.UUID) error
}
