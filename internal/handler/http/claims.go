package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// actorID returns the authenticated subject, or nil when unavailable.
// Activity logging tolerates a missing actor.
func actorID(r *http.Request) *string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return nil
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil
	}
	return &sub
}

func isAdmin(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}
	admin, ok := claims["is_admin"].(bool)
	return ok && admin
}

// canAccess reports whether the caller may act on a resource owned by
// ownerID. Administrators may act on anything; self-service callers only on
// their own records.
func canAccess(r *http.Request, ownerID string) bool {
	return isAdmin(r) || claimedEmployeeID(r) == ownerID
}

func claimedEmployeeID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	employeeID, _ := claims["employee_id"].(string)
	return employeeID
}
