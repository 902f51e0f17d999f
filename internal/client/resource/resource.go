// Package resource содержит трехсостоятельный контейнер результата
// асинхронной операции: Loading, Success или Error.
package resource

import (
	"context"
	"errors"
)

// State описывает вариант Resource
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Resource is the outcome of an asynchronous operation.
// Data is optional: Success may carry nil (empty response body),
// Error may carry the last known data.
type Resource[T any] struct {
	Data    *T
	Message string
	State   State
	Kind    Kind
}

// Loading возвращает промежуточное состояние без данных
func Loading[T any]() Resource[T] {
	return Resource[T]{State: StateLoading}
}

// Success возвращает успешный результат. data может быть nil.
func Success[T any](data *T) Resource[T] {
	return Resource[T]{State: StateSuccess, Data: data}
}

// Fail возвращает ошибку с заданным видом и сообщением
func Fail[T any](kind Kind, message string) Resource[T] {
	return Resource[T]{State: StateError, Kind: kind, Message: message}
}

// FailWith возвращает ошибку, сохраняя последние известные данные
func FailWith[T any](kind Kind, message string, data *T) Resource[T] {
	return Resource[T]{State: StateError, Kind: kind, Message: message, Data: data}
}

// FromError строит Error из произвольной ошибки
func FromError[T any](kind Kind, err error) Resource[T] {
	if err == nil {
		return Fail[T](kind, kind.String())
	}
	return Fail[T](kind, err.Error())
}

func (r Resource[T]) IsLoading() bool { return r.State == StateLoading }
func (r Resource[T]) IsSuccess() bool { return r.State == StateSuccess }
func (r Resource[T]) IsError() bool   { return r.State == StateError }

// Value возвращает данные и признак их наличия
func (r Resource[T]) Value() (T, bool) {
	var zero T
	if r.Data == nil {
		return zero, false
	}
	return *r.Data, true
}

// Err returns a *Error for the Error variant and nil otherwise.
func (r Resource[T]) Err() error {
	if r.State != StateError {
		return nil
	}
	return &Error{Kind: r.Kind, Message: r.Message}
}

// Error is the error form of an Error resource.
type Error struct {
	Message string
	Kind    Kind
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf extracts the Kind from an error produced by Resource.Err.
func KindOf(err error) Kind {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Kind
	}
	return KindUnknown
}

// Run выполняет fn в отдельной горутине и публикует Loading,
// затем ровно один терминальный вариант. Канал закрывается после него.
// Если ctx отменен раньше, чем fn завершилась, результат отбрасывается.
func Run[T any](ctx context.Context, fn func(ctx context.Context) Resource[T]) <-chan Resource[T] {
	out := make(chan Resource[T], 2)
	out <- Loading[T]()

	go func() {
		defer close(out)

		res := fn(ctx)
		if res.IsLoading() {
			res = Fail[T](KindUnknown, "operation finished without result")
		}

		select {
		case out <- res:
		case <-ctx.Done():
		}
	}()

	return out
}

// Await ждет терминальный вариант из канала Run
func Await[T any](ch <-chan Resource[T]) Resource[T] {
	last := Fail[T](KindCanceled, "operation abandoned")
	for res := range ch {
		if !res.IsLoading() {
			last = res
		}
	}
	return last
}
