// Package respond carries the JSON and file-download response helpers shared
// by the HTTP handlers.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chwpym/autoreturns/pkg/logger"
)

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func Error(w http.ResponseWriter, r *http.Request, status int, err error) {
	JSON(w, r, status, errorBody{Code: status, Message: err.Error()})
}

// File streams a produced artifact as an attachment download.
func File(w http.ResponseWriter, r *http.Request, name, mime string, data []byte) {
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	if _, err := w.Write(data); err != nil {
		logger.Error(r.Context(), "write file response", logger.ErrorF(err))
	}
}
