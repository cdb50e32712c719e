package api

import (
	"net/http"

	"github.com/littlesteps/media-go/internal/apictx"
)

// requireFamily rejects the request when auth context is present and the
// caller is not a member of the named family. A missing auth context means
// auth is disabled (dev) or the caller is a trusted system.
func requireFamily(w http.ResponseWriter, r *http.Request, familyID string) bool {
	if _, ok := apictx.AuthFamiliesFromContext(r.Context()); ok && !apictx.IsFamilyMember(r.Context(), familyID) {
		WriteError(w, http.StatusForbidden, "Not a member of this family", nil)
		return false
	}
	return true
}
