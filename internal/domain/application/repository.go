package application

import (
	"context"

	"github.com/Vipul160305/placetrack/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByStudentAndListing(ctx context.Context, studentID, listingID common.UUID) (*Application, error)
	ListByStudent(ctx context.Context, studentID common.UUID) ([]Application, error)
	ListByListing(ctx context.Context, listingID common.UUID) ([]Application, error)
	ListAll(ctx context.Context) ([]Application, error)
	Update(ctx context.Context, app Application) (*Application, error)
	CountByStatus(ctx context.Context) (map[Status]int, error)
}
