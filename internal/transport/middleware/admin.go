package middleware

import (
	"net/http"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// RequireAdmin guards the /api/admin subtree. Services repeat the check, so
// this only turns anonymous and non-admin callers away early.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
