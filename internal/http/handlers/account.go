package handlers

import (
	"net/http"

	"github.com/Vipul160305/placetrack/internal/app"
	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/http/middleware"
	"github.com/Vipul160305/placetrack/internal/http/response"
	"github.com/Vipul160305/placetrack/internal/upload"
)

const maxResumeBytes = 10 << 20

type AccountHandler struct {
	accounts *app.AccountService
	uploads  *upload.Store
}

func NewAccountHandler(accounts *app.AccountService, uploads *upload.Store) *AccountHandler {
	return &AccountHandler{accounts: accounts, uploads: uploads}
}

func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	response.JSON(w, http.StatusOK, acc)
}

type updateAccountRequest struct {
	Name   *string  `json:"name"`
	Branch *string  `json:"branch"`
	CGPA   *float64 `json:"cgpa"`
	Skills []string `json:"skills"`
}

func (h *AccountHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req updateAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.accounts.Update(r.Context(), acc.ID, app.UpdateInput{
		Name:   req.Name,
		Branch: req.Branch,
		CGPA:   req.CGPA,
		Skills: req.Skills,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

type resumeResponse struct {
	Resume string `json:"resume"`
}

func (h *AccountHandler) UploadResume(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		response.Error(w, common.NewValidationError("invalid upload", map[string]string{"file": "multipart form expected"}))
		return
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		response.Error(w, common.NewValidationError("invalid upload", map[string]string{"resume": "file is required"}))
		return
	}
	defer file.Close()
	name, err := h.uploads.Save(header.Filename, file)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.accounts.SetResume(r.Context(), acc.ID, name); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resumeResponse{Resume: name})
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.accounts.List(r.Context(), r.URL.Query().Get("role"), r.URL.Query().Get("search"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	acc, err := h.accounts.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, acc)
}

type deletedResponse struct {
	Deleted bool `json:"deleted"`
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.accounts.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, deletedResponse{Deleted: true})
}
