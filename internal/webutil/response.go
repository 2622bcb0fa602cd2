// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"skill_tracker/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIError
	var appErr *model.AppError
	switch {
	case errors.As(err, &appErr):
		errResp = model.APIError{Detail: appErr.Detail, Code: appErr.Code, Field: appErr.Field}
	case errors.Is(err, model.ErrNotFound):
		errResp = model.APIError{Detail: model.MsgGoalNotFound}
	case errors.Is(err, model.ErrInvalidInput):
		errResp = model.APIError{Detail: err.Error(), Code: "INVALID_REQUEST"}
	default:
		// 詳細はログにだけ残す
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIError{Detail: model.MsgInternalServer}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "INVALID_REQUEST_BODY":
			return http.StatusBadRequest
		case "VALIDATION_ERROR", "INVALID_URL_PARAM", "INVALID_QUERY_PARAM":
			return http.StatusUnprocessableEntity
		}
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// RespondNoContent はボディなしの 204 を返します
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
