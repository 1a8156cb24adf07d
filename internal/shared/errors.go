package shared

import "errors"

var (
	// ErrUnauthenticated indicates the request carries no usable identity.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrCompanyUnresolved indicates an authenticated caller without a company.
	ErrCompanyUnresolved = errors.New("company not resolved")
)
