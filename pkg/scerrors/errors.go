package scerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the high level class of an error surfaced by syscallgen.
type Kind string

const (
	// KindUsage indicates the command line was incomplete or contradictory.
	KindUsage Kind = "usage"
	// KindMalformed indicates the XML descriptor is invalid or has the wrong shape.
	KindMalformed Kind = "malformed"
	// KindEmpty indicates the descriptor declares no api system calls.
	KindEmpty Kind = "empty"
	// KindRender 表示头文件渲染失败。
	KindRender Kind = "render"
	// KindIO 表示读写文件失败。
	KindIO Kind = "io"
	// KindInternal 表示未知或内部错误。
	KindInternal Kind = "internal"
)

// Error 包装底层错误并附加 Kind，方便调用方根据类型处理。
type Error struct {
	Kind Kind
	Err  error
}

// Error 实现 error 接口。
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap 允许 errors.Is/As 访问底层错误。
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New 创建指定 Kind 的错误。
func New(kind Kind, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

var (
	// ErrEmptyCatalog is returned when the api element declares no syscalls.
	ErrEmptyCatalog = errors.New("syscallgen: no api syscalls declared")
)
