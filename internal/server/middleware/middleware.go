package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

var (
	DefaultSkipper = func(c echo.Context) bool {
		return false
	}
)

type Skipper func(c echo.Context) bool

type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)
	Debugw(template string, args ...any)
	Infow(template string, args ...any)
	Warnw(template string, args ...any)
	Errorw(template string, args ...any)
}

type Response struct {
	Status       int         `json:"-"`
	Success      bool        `json:"success"`
	Data         any `json:"data,omitempty"`
	ErrorCode    string      `json:"error_code,omitempty"`
	ErrorMessage string      `json:"error_message,omitempty"`
	ErrorData    any `json:"error_data,omitempty"`
}

type ResponseError struct {
	Status       int         `json:"-"`
	Err          error       `json:"-"`
	Success      bool        `json:"success"`
	ErrorCode    string      `json:"error_code,omitempty"`
	ErrorMessage string      `json:"error_message,omitempty"`
	ErrorData    any `json:"error_data,omitempty"`
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("status: %d, code: %s; message: %+v", e.Status, e.ErrorCode, e.Err)
}
