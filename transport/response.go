package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/utils/errors"
)

type response struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	writeErrorData(w, err, nil)
}

// writeErrorData keeps a payload next to the error, e.g. the listings view
// that still shows the previous results under the banner.
func writeErrorData(w http.ResponseWriter, err error, data interface{}) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), response{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Data:    data,
		Fields:  ce.Fields(),
	})
}
