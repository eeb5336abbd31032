package domain

import (
	"errors"
	"strings"
)

// 业务层错误口径：全部是预期内、面向用户的结果，不是崩溃
var (
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrPasswordMismatch     = errors.New("password confirmation does not match")
	ErrInvalidToken         = errors.New("invalid verification token")
	ErrAuthenticationFailed = errors.New("invalid credentials or account disabled")
	ErrForbidden            = errors.New("insufficient role")
	ErrNotFound             = errors.New("record not found")
)

// FieldError 绑定到具体表单字段的错误；注册时
// email 重复和密码不一致要能同时上报
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e FieldError) Unwrap() error { return e.Err }

type FieldErrors []FieldError

func (es FieldErrors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Is 让 errors.Is(es, ErrDuplicateEmail) 这种判断穿透聚合
func (es FieldErrors) Is(target error) bool {
	for _, e := range es {
		if errors.Is(e.Err, target) {
			return true
		}
	}
	return false
}

// IsDuplicateKey 识别存储层唯一约束冲突（mysql/postgres 文案各异）。
// 预检查只是优化，真正的兜底在这里。
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
