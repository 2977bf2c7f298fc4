package handlers

import (
	"net/http"
	"time"

	"github.com/Vipul160305/placetrack/internal/app"
	"github.com/Vipul160305/placetrack/internal/http/middleware"
	"github.com/Vipul160305/placetrack/internal/http/response"
)

type ListingHandler struct {
	listings *app.ListingService
}

func NewListingHandler(listings *app.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

type listingRequest struct {
	CompanyName      string           `json:"company_name"`
	Role             string           `json:"role"`
	Package          float64          `json:"package"`
	Description      string           `json:"description"`
	Location         string           `json:"location"`
	MinCGPA          float64          `json:"min_cgpa"`
	EligibleBranches []string         `json:"eligible_branches"`
	RequiredSkills   []string         `json:"required_skills"`
	Rounds           []app.RoundInput `json:"rounds"`
	Deadline         *time.Time       `json:"deadline"`
}

type updateListingRequest struct {
	CompanyName      *string          `json:"company_name"`
	Role             *string          `json:"role"`
	Package          *float64         `json:"package"`
	Description      *string          `json:"description"`
	Location         *string          `json:"location"`
	MinCGPA          *float64         `json:"min_cgpa"`
	EligibleBranches []string         `json:"eligible_branches"`
	RequiredSkills   []string         `json:"required_skills"`
	Rounds           []app.RoundInput `json:"rounds"`
	Deadline         *time.Time       `json:"deadline"`
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req listingRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.listings.Create(r.Context(), acc.ID, app.ListingInput{
		CompanyName:      req.CompanyName,
		Role:             req.Role,
		Package:          req.Package,
		Description:      req.Description,
		Location:         req.Location,
		MinCGPA:          req.MinCGPA,
		EligibleBranches: req.EligibleBranches,
		RequiredSkills:   req.RequiredSkills,
		Rounds:           req.Rounds,
		Deadline:         req.Deadline,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.listings.List(r.Context(), acc)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.listings.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateListingRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.listings.Update(r.Context(), id, app.UpdateListingInput{
		CompanyName:      req.CompanyName,
		Role:             req.Role,
		Package:          req.Package,
		Description:      req.Description,
		Location:         req.Location,
		MinCGPA:          req.MinCGPA,
		EligibleBranches: req.EligibleBranches,
		RequiredSkills:   req.RequiredSkills,
		Rounds:           req.Rounds,
		Deadline:         req.Deadline,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.listings.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, deletedResponse{Deleted: true})
}

func (h *ListingHandler) EligibleStudents(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.listings.EligibleStudents(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
