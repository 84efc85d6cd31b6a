// Package pipeline последовательно выполняет шаги проверки запроса. Первый шаг,
// вернувший ошибку, останавливает выполнение, и эта ошибка становится результатом.
package pipeline

import (
	"context"
	"fmt"
)

type Step[T any] func(ctx context.Context, state *T) error

func Run[T any](ctx context.Context, state *T, steps ...Step[T]) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(ctx, state); err != nil {
			return err
		}
	}
	return nil
}

// Error хранит сообщение для клиента; Unwrap отдает sentinel-ошибку, по которой выбирается код ответа.
type Error struct {
	kind    error
	message string
}

func Fail(kind error, format string, args ...any) error {
	return &Error{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.kind
}
