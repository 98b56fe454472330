// Package controller holds the handler bound to each action. Handlers
// read request parameters, call the user service, and forward a result
// payload to the render collaborator; they never format HTML and never
// issue SQL.
package controller

import (
	"context"

	"github.com/jvadillo/php-mvc-tutorial/internal/dispatch"
	"github.com/jvadillo/php-mvc-tutorial/internal/service"
)

// The home page greets a fixed name; there are no sessions to fill in a
// real one.
const placeholderName = "guest"

// Controller bundles the action handlers around the user service.
type Controller struct {
	users *service.UserService
}

// New creates a Controller.
func New(users *service.UserService) *Controller {
	return &Controller{users: users}
}

// Actions returns the action table served by the dispatcher.
func (c *Controller) Actions() map[string]dispatch.HandlerFunc {
	return map[string]dispatch.HandlerFunc{
		"home":     c.Home,
		"form":     c.Form,
		"saveUser": c.SaveUser,
		"list":     c.List,
	}
}

// Home renders the landing page.
func (c *Controller) Home(ctx context.Context, req *dispatch.Request) (*dispatch.Result, error) {
	return &dispatch.Result{
		View: "home",
		Data: map[string]any{"name": placeholderName},
	}, nil
}

// Form renders the static user registration form.
func (c *Controller) Form(ctx context.Context, req *dispatch.Request) (*dispatch.Result, error) {
	return &dispatch.Result{View: "form"}, nil
}

// SaveUser persists a user from the submitted form fields and renders a
// confirmation. A missing name defaults to "" and a missing age to 0.
func (c *Controller) SaveUser(ctx context.Context, req *dispatch.Request) (*dispatch.Result, error) {
	name := req.Param("name", "")
	age, err := req.IntParam("age", 0)
	if err != nil {
		return nil, err
	}

	user, err := c.users.Create(ctx, name, age)
	if err != nil {
		return nil, err
	}

	return &dispatch.Result{
		View: "save",
		Data: map[string]any{"user": user},
	}, nil
}

// List renders all persisted users in insertion order.
func (c *Controller) List(ctx context.Context, req *dispatch.Request) (*dispatch.Result, error) {
	users, err := c.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dispatch.Result{
		View: "list",
		Data: map[string]any{"users": users},
	}, nil
}
