// Package apperr 定義領域層的錯誤類型
// 以 Kind 標記錯誤分類，讓呼叫端能用結構化方式判斷錯誤而非比對字串
package apperr

import "errors"

// Kind 錯誤分類
type Kind int

const (
	// KindUnknown 非本套件產生的錯誤
	KindUnknown Kind = iota
	// KindNotFound 參照的實體不存在
	KindNotFound
	// KindConflict 唯一性衝突或不合法的狀態轉移
	KindConflict
	// KindAuthorization 操作者無權存取目標資源
	KindAuthorization
)

// Error 帶 Kind 標記的領域錯誤
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap 回傳底層錯誤（若有）
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound 建立 KindNotFound 錯誤
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict 建立 KindConflict 錯誤
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Authorization 建立 KindAuthorization 錯誤
func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

// Wrap 以指定 Kind 包裝底層錯誤
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf 取出錯誤鏈中的 Kind，找不到 *Error 時回傳 KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound 判斷錯誤是否為 KindNotFound
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConflict 判斷錯誤是否為 KindConflict
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// IsAuthorization 判斷錯誤是否為 KindAuthorization
func IsAuthorization(err error) bool { return KindOf(err) == KindAuthorization }
