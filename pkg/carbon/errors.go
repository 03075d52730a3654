package carbon

import (
	"errors"
	"fmt"
)

// ErrInvalidActivity 活动数据未通过入库校验
var ErrInvalidActivity = errors.New("invalid activity record")

// ValidationError 描述具体哪个字段不合法
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidActivity
}
