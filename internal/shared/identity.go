package shared

import (
	"fmt"
	"strconv"
)

// Session value keys written by the upstream authentication flow.
const (
	SessionKeyUserName  = "user_name"
	SessionKeyCompanyID = "company_id"
)

// Identity is the caller resolved from the authenticated context. Every
// order operation is scoped to Identity.CompanyID.
type Identity struct {
	UserID    int64
	UserName  string
	CompanyID int64
}

// IdentityFromSession resolves the caller identity from a loaded session.
// A session without a user is unauthenticated; a user without a company
// cannot be served (queries are company-scoped).
func IdentityFromSession(sess *Session) (Identity, error) {
	if sess == nil || sess.User() == "" {
		return Identity{}, ErrUnauthenticated
	}
	userID, err := strconv.ParseInt(sess.User(), 10, 64)
	if err != nil || userID <= 0 {
		return Identity{}, fmt.Errorf("%w: bad user id %q", ErrUnauthenticated, sess.User())
	}
	companyID, err := strconv.ParseInt(sess.Get(SessionKeyCompanyID), 10, 64)
	if err != nil || companyID <= 0 {
		return Identity{}, ErrCompanyUnresolved
	}
	return Identity{
		UserID:    userID,
		UserName:  sess.Get(SessionKeyUserName),
		CompanyID: companyID,
	}, nil
}
