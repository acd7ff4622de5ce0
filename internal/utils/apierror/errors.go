package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// StructuredError carries validation failures as a field -> problems
// map, so the client can re-render each field with its messages.
type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError     = NewSimple(404, "Resource not found")
	UnauthorizedError = NewSimple(401, "Missing authentication")

	InvalidAuthTokenError    = NewSimple(401, "Invalid or expired auth token")
	CredentialsMismatchError = NewSimple(400, "Credentials mismatch")
	EmailTakenError          = NewSimple(409, "Email already registered")

	// ConflictError covers persistence-layer unique-constraint
	// rejections, e.g. two requests racing past the name check.
	ConflictError = NewSimple(409, "Resource already exists")

	SelfLinkError      = NewSimple(400, "A folder cannot be related to itself")
	NotRelatedError    = NewSimple(400, "Folders are not related")
	AlreadyLinkedError = NewSimple(400, "Folders are already related")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "len":
			problems[field] = append(problems[field], "Value must have exactly "+fe.Param()+" entries")
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "nodupes":
			problems[field] = append(problems[field], "Value cannot contain duplicates")
		case "nospaces":
			problems[field] = append(problems[field], "Value cannot contain whitespace")
		case "tagchars":
			problems[field] = append(problems[field], "Tags may only contain letters, digits, '-' and '_'")
		case "url":
			problems[field] = append(problems[field], "Value must be a valid URL")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Missing required parameter '%s'", name)
}
