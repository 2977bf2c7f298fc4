package listing

import (
	"context"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
)

type Repository interface {
	Create(ctx context.Context, l Listing) (*Listing, error)
	GetByID(ctx context.Context, id common.UUID) (*Listing, error)
	ListAll(ctx context.Context) ([]Listing, error)
	ListEligible(ctx context.Context, cgpa float64, branch account.Branch) ([]Listing, error)
	Update(ctx context.Context, l Listing) (*Listing, error)
	Delete(ctx context.Context, id common.UUID) error
}
