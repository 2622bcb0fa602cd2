// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"skill_tracker/internal/model"
)

// maxBodyBytes はリクエストボディの上限です
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディを dst にデコードします。
// 構文エラーは INVALID_REQUEST_BODY (400)、型の不一致や未知のフィールドは
// VALIDATION_ERROR (422) の AppError として返します。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return invalidBody("Request body is required")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return invalidBody("Request body is required")
		case errors.As(err, &typeErr):
			return model.NewAppError("VALIDATION_ERROR",
				fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String()),
				typeErr.Field, model.ErrInvalidInput)
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return model.NewAppError("VALIDATION_ERROR",
				fmt.Sprintf("%s is not a permitted field", field),
				field, model.ErrInvalidInput)
		case errors.As(err, &maxErr):
			return invalidBody("Request body is too large")
		default:
			return invalidBody("Request body is not valid JSON")
		}
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return invalidBody("Request body must contain a single JSON value")
	}
	return nil
}

func invalidBody(detail string) error {
	return model.NewAppError("INVALID_REQUEST_BODY", detail, "", model.ErrInvalidInput)
}
