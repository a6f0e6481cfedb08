package sentry

import (
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// FlushTime bounds how long shutdown waits for buffered events.
const FlushTime = 2 * time.Second

// Sentry is a small builder around the request-scoped hub.
type Sentry struct {
	context echo.Context
	error   error
	message string
}

func (s *Sentry) WithContext(ctx echo.Context) *Sentry {
	s.context = ctx
	return s
}

func (s *Sentry) WithError(err error) *Sentry {
	s.error = err
	return s
}

func (s *Sentry) WithMessage(msg string) *Sentry {
	s.message = msg
	return s
}

// Capture reports the collected error or message on the request hub when one
// is attached, falling back to the global hub.
func (s *Sentry) Capture() {
	hub := sentrygo.CurrentHub()
	if s.context != nil {
		if h := sentryecho.GetHubFromContext(s.context); h != nil {
			hub = h
		}
	}

	if s.error != nil {
		hub.CaptureException(s.error)
		return
	}
	if s.message != "" {
		hub.CaptureMessage(s.message)
	}
}
