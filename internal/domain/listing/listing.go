package listing

import (
	"time"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
)

type RoundType string

const (
	RoundAptitude        RoundType = "Aptitude"
	RoundTechnical       RoundType = "Technical"
	RoundHR              RoundType = "HR"
	RoundGroupDiscussion RoundType = "Group Discussion"
	RoundCoding          RoundType = "Coding"
)

func ParseRoundType(value string) (RoundType, bool) {
	switch RoundType(value) {
	case RoundAptitude, RoundTechnical, RoundHR, RoundGroupDiscussion, RoundCoding:
		return RoundType(value), true
	default:
		return "", false
	}
}

// Round is one named stage of a listing's interview sequence.
type Round struct {
	Name string    `json:"name"`
	Type RoundType `json:"type"`
}

type Listing struct {
	ID               common.UUID      `json:"id"`
	CompanyName      string           `json:"company_name"`
	Role             string           `json:"role"`
	Package          float64          `json:"package"`
	Description      string           `json:"description,omitempty"`
	Location         string           `json:"location,omitempty"`
	MinCGPA          float64          `json:"min_cgpa"`
	EligibleBranches []account.Branch `json:"eligible_branches"`
	RequiredSkills   []string         `json:"required_skills"`
	Rounds           []Round          `json:"rounds"`
	Deadline         *time.Time       `json:"deadline,omitempty"`
	CreatedBy        common.UUID      `json:"created_by"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
