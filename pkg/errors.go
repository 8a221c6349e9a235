package pkg

import "fmt"

// Kind classifies an application error so callers can branch on the class of
// failure without string matching.
//
// Taxonomy:
//   - KindValidation: malformed or out-of-range input
//   - KindNotFound: referenced entity absent
//   - KindDomain: value violates a business rule (e.g. negative price)
//   - KindConflict: would violate a uniqueness/versioning invariant
//   - KindReference: dangling foreign key
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindDomain     Kind = "domain"
	KindConflict   Kind = "conflict"
	KindReference  Kind = "reference"
	KindInternal   Kind = "internal"
)

// AppError is the application-facing error carried across layers. Handlers
// translate it into an HTTP response body via ToHTTPError.
type AppError struct {
	Code       string
	Message    string
	Kind       Kind
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body returned to API clients.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindDomain, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindDomain, HTTPStatus: httpStatus}
}

func NewKindError(kind Kind, code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Kind: kind, HTTPStatus: httpStatus}
}
