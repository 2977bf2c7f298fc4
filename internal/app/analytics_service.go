package app

import (
	"context"
	"math"

	"github.com/Vipul160305/placetrack/internal/domain/account"
	"github.com/Vipul160305/placetrack/internal/domain/application"
	"github.com/Vipul160305/placetrack/internal/domain/listing"
)

// AnalyticsService recomputes aggregate placement statistics from the
// current store state on every call; nothing is cached.
type AnalyticsService struct {
	accounts     account.Repository
	listings     listing.Repository
	applications application.Repository
}

func NewAnalyticsService(accounts account.Repository, listings listing.Repository, applications application.Repository) *AnalyticsService {
	return &AnalyticsService{accounts: accounts, listings: listings, applications: applications}
}

type BranchStats struct {
	Branch account.Branch `json:"branch"`
	Total  int            `json:"total"`
	Placed int            `json:"placed"`
}

type Stats struct {
	TotalStudents        int                        `json:"total_students"`
	PlacedStudents       int                        `json:"placed_students"`
	UnplacedStudents     int                        `json:"unplaced_students"`
	PlacementPercentage  float64                    `json:"placement_percentage"`
	TotalListings        int                        `json:"total_listings"`
	TotalApplications    int                        `json:"total_applications"`
	HighestPackage       float64                    `json:"highest_package"`
	AveragePackage       float64                    `json:"average_package"`
	BranchWise           []BranchStats              `json:"branch_wise"`
	ApplicationsByStatus map[application.Status]int `json:"applications_by_status"`
}

func (s *AnalyticsService) Compute(ctx context.Context) (*Stats, error) {
	students, err := s.accounts.List(ctx, account.Filter{Role: account.RoleStudent})
	if err != nil {
		return nil, err
	}
	listings, err := s.listings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.applications.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalStudents:        len(students),
		TotalListings:        len(listings),
		ApplicationsByStatus: byStatus,
		BranchWise:           []BranchStats{},
	}
	for _, count := range byStatus {
		stats.TotalApplications += count
	}

	perBranch := make(map[account.Branch]*BranchStats)
	for _, student := range students {
		if student.IsPlaced {
			stats.PlacedStudents++
		}
		entry, ok := perBranch[student.Branch]
		if !ok {
			entry = &BranchStats{Branch: student.Branch}
			perBranch[student.Branch] = entry
		}
		entry.Total++
		if student.IsPlaced {
			entry.Placed++
		}
	}
	stats.UnplacedStudents = stats.TotalStudents - stats.PlacedStudents
	if stats.TotalStudents > 0 {
		stats.PlacementPercentage = round2(float64(stats.PlacedStudents) / float64(stats.TotalStudents) * 100)
	}

	// Fixed enumeration order; branches with no students are omitted.
	for _, branch := range account.Branches {
		if entry, ok := perBranch[branch]; ok {
			stats.BranchWise = append(stats.BranchWise, *entry)
		}
	}

	if len(listings) > 0 {
		var sum float64
		for _, l := range listings {
			if l.Package > stats.HighestPackage {
				stats.HighestPackage = l.Package
			}
			sum += l.Package
		}
		stats.AveragePackage = round2(sum / float64(len(listings)))
	}
	return stats, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
