// Package assistant: failure.go classifies collaborator errors.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Kind says how a collaborator call failed.
type Kind int

const (
	// KindUnavailable covers network trouble, quota and server errors.
	KindUnavailable Kind = iota
	// KindAuth means the API key is missing, invalid or was reset.
	KindAuth
	// KindTimeout means the call ran past its deadline.
	KindTimeout
	// KindMalformed means the answer could not be used.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindTimeout:
		return "timeout"
	case KindMalformed:
		return "malformed"
	}
	return "unavailable"
}

// Failure is the only error type returned by a Collaborator.
type Failure struct {
	Kind Kind
	Op   string // chat, expense, income or image
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("assistant %s: %s: %v", f.Op, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

var (
	errEmptyResponse = errors.New("empty response")
	errNoImage       = errors.New("response contains no image")
	errDisabled      = errors.New("assistant is not configured")
)

// keyResetMessage is what the API answers when a project key was revoked.
const keyResetMessage = "Requested entity was not found"

// Classify wraps err into a *Failure for op. Errors that already are a
// *Failure keep their kind.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		if f.Op == "" {
			f.Op = op
		}
		return f
	}
	return &Failure{Kind: kindOf(err), Op: op, Err: err}
}

func kindOf(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case strings.Contains(apiErr.Message, keyResetMessage):
			return KindAuth
		case apiErr.Code == http.StatusUnauthorized, apiErr.Code == http.StatusForbidden:
			return KindAuth
		case apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "API key"):
			return KindAuth
		case apiErr.Code == http.StatusGatewayTimeout:
			return KindTimeout
		}
		return KindUnavailable
	}

	if strings.Contains(err.Error(), keyResetMessage) {
		return KindAuth
	}
	return KindUnavailable
}

// IsAuth reports whether err asks the user to reconnect their key.
func IsAuth(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == KindAuth
}
