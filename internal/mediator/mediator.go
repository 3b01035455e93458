// Package mediator routes command values to the single handler registered
// for their concrete type.
//
//	m, err := mediator.New(
//		mediator.Handle(mediator.HandlerFunc[service.GetNameOriginsCommand, []*models.NameOrigin](svc.HandleGetNameOrigins)),
//	)
//	origins, err := mediator.Send[[]*models.NameOrigin](ctx, m, service.GetNameOriginsCommand{Name: "Maria"})
//
// The registry is fixed at construction and safe for concurrent use.
package mediator

import (
	"context"
	"fmt"
	"reflect"
)

// Handler handles one command type and produces one result type.
type Handler[C any, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[C any, R any] func(ctx context.Context, cmd C) (R, error)

func (f HandlerFunc[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	return f(ctx, cmd)
}

// Registration binds a handler to its command type. Build one with Handle.
type Registration struct {
	commandType reflect.Type
	resultType  reflect.Type
	invoke      func(ctx context.Context, cmd any) (any, error)
}

// Handle registers h for commands of type C.
func Handle[C any, R any](h Handler[C, R]) Registration {
	return Registration{
		commandType: reflect.TypeFor[C](),
		resultType:  reflect.TypeFor[R](),
		invoke: func(ctx context.Context, cmd any) (any, error) {
			return h.Handle(ctx, cmd.(C))
		},
	}
}

// Dispatcher is what callers of Send depend on.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd any) (any, error)
}

// Mediator is an immutable command-type to handler registry.
type Mediator struct {
	handlers map[reflect.Type]Registration
}

// New builds a mediator. Registering two handlers for the same command type
// is an error.
func New(regs ...Registration) (*Mediator, error) {
	m := &Mediator{handlers: make(map[reflect.Type]Registration, len(regs))}
	for _, reg := range regs {
		if reg.invoke == nil {
			return nil, fmt.Errorf("mediator: empty registration")
		}
		if _, exists := m.handlers[reg.commandType]; exists {
			return nil, &DuplicateHandlerError{CommandType: reg.commandType.String()}
		}
		m.handlers[reg.commandType] = reg
	}
	return m, nil
}

// Dispatch runs the handler registered for cmd's dynamic type.
func (m *Mediator) Dispatch(ctx context.Context, cmd any) (any, error) {
	cmdType := reflect.TypeOf(cmd)
	reg, ok := m.handlers[cmdType]
	if !ok {
		return nil, &HandlerNotRegisteredError{CommandType: typeName(cmdType)}
	}
	return reg.invoke(ctx, cmd)
}

// Registered reports whether a handler exists for commands of type C.
func Registered[C any](m *Mediator) bool {
	_, ok := m.handlers[reflect.TypeFor[C]()]
	return ok
}

// Send dispatches cmd and asserts the handler's result to R.
func Send[R any](ctx context.Context, d Dispatcher, cmd any) (R, error) {
	var zero R
	res, err := d.Dispatch(ctx, cmd)
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}
	out, ok := res.(R)
	if !ok {
		return zero, &HandlerResultTypeError{
			CommandType: typeName(reflect.TypeOf(cmd)),
			Want:        reflect.TypeFor[R]().String(),
			Got:         reflect.TypeOf(res).String(),
		}
	}
	return out, nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
