package httperr

import "errors"

// BusinessError is a recoverable domain condition identified by a
// stable code, e.g. "slot_unavailable". Errors built from the same code
// compare equal, so errors.Is works against the package-level sentinels
// in internal/domain/schedule.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
