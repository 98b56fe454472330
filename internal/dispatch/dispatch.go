// Package dispatch resolves the action named by an incoming request to
// exactly one controller handler.
package dispatch

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jvadillo/php-mvc-tutorial/internal/domain"
)

// DefaultAction is dispatched when a request names no action.
const DefaultAction = "home"

// Request carries the action name and the named parameters of one
// incoming request.
type Request struct {
	Action string
	Params url.Values
}

// Param returns the named parameter, or fallback if it is absent or
// empty.
func (r *Request) Param(key, fallback string) string {
	if v := r.Params.Get(key); v != "" {
		return v
	}
	return fallback
}

// IntParam returns the named parameter as an integer. An absent or
// empty parameter yields fallback; a value that is present but not
// numeric fails with domain.ErrInvalidInput rather than coercing to
// zero.
func (r *Request) IntParam(key string, fallback int) (int, error) {
	v := r.Params.Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not a number: %w", key, domain.ErrInvalidInput)
	}
	return n, nil
}

// Result is the payload a handler forwards to the render collaborator.
type Result struct {
	View string
	Data map[string]any
}

// HandlerFunc handles one dispatched action.
type HandlerFunc func(ctx context.Context, req *Request) (*Result, error)

// Dispatcher maps action names to handlers. The table is fixed at
// construction and never mutated afterwards.
type Dispatcher struct {
	handlers map[string]HandlerFunc
}

// New builds a Dispatcher from the given action table. The table is
// copied, so later mutation of the argument has no effect.
func New(handlers map[string]HandlerFunc) *Dispatcher {
	table := make(map[string]HandlerFunc, len(handlers))
	for name, h := range handlers {
		table[name] = h
	}
	return &Dispatcher{handlers: table}
}

// Dispatch resolves the request's action and runs its handler. An empty
// action name falls back to DefaultAction; an unregistered one fails
// with domain.ErrUnknownAction before any handler runs. Exactly one
// handler executes per request.
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) (*Result, error) {
	action := req.Action
	if action == "" {
		action = DefaultAction
	}

	h, ok := d.handlers[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, action)
	}
	return h(ctx, req)
}
