// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
)

// クライアント向けの固定メッセージ
const (
	MsgGoalNotFound   = "Goal not found"
	MsgInternalServer = "Internal server error"
)

// AppError はクライアントに返す詳細を持ったエラーです。
// Err には判定用の sentinel エラー (ErrNotFound など) を入れます。
type AppError struct {
	Code   string
	Detail string
	Field  string
	Err    error
}

func NewAppError(code, detail, field string, err error) *AppError {
	return &AppError{Code: code, Detail: detail, Field: field, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Detail + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Detail
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// APIError はAPIエラーレスポンスの構造体
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
	Field  string `json:"field,omitempty"`
}
