package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the request scoped values through the handler chain. It
// embeds the gin context so handlers keep access to the raw request, and Ctx
// is the context.Context that must be passed down to the repositories.
type Context struct {
	*gin.Context
	Ctx context.Context

	queryErrs []error
	paramErrs []error
}

// Respond converts a Go value to JSON and sends it to the client.
func (c *Context) Respond(data interface{}, statusCode int) error {
	if v, ok := c.Ctx.Value(KeyValues).(*Values); ok {
		v.StatusCode = statusCode
	}

	c.JSON(statusCode, data)

	return nil
}

// RespondError sends an error response back to the client. Trusted *Error
// values keep their status and message, everything else is reported as an
// internal server error with a generic message.
func (c *Context) RespondError(err error) error {
	if webErr, ok := errors.Cause(err).(*Error); ok {
		return c.Respond(map[string]interface{}{
			"error":  webErr.Err.Error(),
			"fields": webErr.Fields,
			"status": false,
		}, webErr.Status)
	}

	return c.Respond(map[string]interface{}{
		"error":  "internal server error",
		"status": false,
	}, http.StatusInternalServerError)
}

// BindFunc binds the request body (json or form) into data and checks that
// every field named in requiredFields is present.
func (c *Context) BindFunc(data interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(data); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request"), http.StatusBadRequest)
	}

	return RequiredFields(data, requiredFields...)
}

// RequiredFields checks that the named struct fields are set. Pointer fields
// must be non-nil, strings must be non-empty.
func RequiredFields(data interface{}, fields ...string) error {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var fieldErrs []FieldError
	for _, name := range fields {
		f := v.FieldByName(name)
		if !f.IsValid() {
			continue
		}
		missing := false
		switch f.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			missing = f.IsNil()
		case reflect.String:
			missing = f.String() == ""
		}
		if missing {
			fieldErrs = append(fieldErrs, FieldError{Field: name, Error: "required"})
		}
	}

	if len(fieldErrs) > 0 {
		return &Error{
			Err:    errors.New("required fields are missing"),
			Status: http.StatusBadRequest,
			Fields: fieldErrs,
		}
	}

	return nil
}

// GetQueryFunc reads an optional query parameter and converts it to the given
// kind. A nil interface of the pointer type is returned when the parameter is
// absent. Conversion errors are collected and surfaced by ValidQuery.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)
	if !ok || value == "" {
		return pointerOf(kind, nil)
	}

	switch kind {
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Wrapf(err, "parsing query %q", name))
			return (*int)(nil)
		}
		return &n
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Wrapf(err, "parsing query %q", name))
			return (*bool)(nil)
		}
		return &b
	case reflect.String:
		return &value
	}

	c.queryErrs = append(c.queryErrs, fmt.Errorf("unsupported query kind %s for %q", kind, name))
	return nil
}

// GetParam reads a path parameter and converts it to the given kind.
// Conversion errors are collected and surfaced by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, errors.Wrapf(err, "parsing param %q", name))
			return 0
		}
		return n
	case reflect.String:
		return value
	}

	c.paramErrs = append(c.paramErrs, fmt.Errorf("unsupported param kind %s for %q", kind, name))
	return nil
}

// ValidQuery reports any query conversion error collected by GetQueryFunc.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) > 0 {
		return NewRequestError(c.queryErrs[0], http.StatusBadRequest)
	}

	return nil
}

// ValidParam reports any param conversion error collected by GetParam.
func (c *Context) ValidParam() error {
	if len(c.paramErrs) > 0 {
		return NewRequestError(c.paramErrs[0], http.StatusBadRequest)
	}

	return nil
}

func pointerOf(kind reflect.Kind, _ interface{}) interface{} {
	switch kind {
	case reflect.Int:
		return (*int)(nil)
	case reflect.Bool:
		return (*bool)(nil)
	case reflect.String:
		return (*string)(nil)
	}

	return nil
}
