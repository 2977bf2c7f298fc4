package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vipul160305/placetrack/internal/common"
)

type ErrorCollector interface {
	IncError(code string)
}

var errorCollector ErrorCollector

func SetErrorCollector(collector ErrorCollector) {
	errorCollector = collector
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    common.Code       `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Error maps a coded error to its HTTP status. Unknown errors are
// reported as generic internal failures without leaking the cause.
func Error(w http.ResponseWriter, err error) {
	detail := errorDetail{Code: common.CodeInternal, Message: "internal error"}
	var coded *common.Error
	if errors.As(err, &coded) {
		detail.Code = coded.Code
		detail.Message = coded.Message
		detail.Fields = coded.Fields
	}
	if errorCollector != nil {
		errorCollector.IncError(string(detail.Code))
	}
	JSON(w, statusFor(detail.Code), errorBody{Error: detail})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
