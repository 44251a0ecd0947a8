package httperr

import "errors"

// Kind classifies a business failure so handlers can pick an HTTP status
// without inspecting individual codes.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindPermission Kind = "permission"
	KindNotFound   Kind = "not_found"
	KindState      Kind = "state"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code string) error { return BusinessError{Kind: KindValidation, Code: code} }
func ErrConflict(code string) error   { return BusinessError{Kind: KindConflict, Code: code} }
func ErrPermission(code string) error { return BusinessError{Kind: KindPermission, Code: code} }
func ErrNotFound(code string) error   { return BusinessError{Kind: KindNotFound, Code: code} }
func ErrState(code string) error      { return BusinessError{Kind: KindState, Code: code} }

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
