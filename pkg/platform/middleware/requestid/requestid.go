// Package requestid assigns a correlation ID to every request. Upstream
// systems pass one in X-Request-Id; anything without one gets a fresh UUID so
// downstream logs and merge events always carry a context ID.
package requestid

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"appointments-api/pkg/requestcontext"
)

const Header = "X-Request-Id"

// Middleware extracts or generates the request correlation ID, stores it in
// the context with the receipt time, and echoes the ID on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextID := r.Header.Get(Header)
		if contextID == "" {
			contextID = uuid.NewString()
		}

		ctx := requestcontext.WithContextID(r.Context(), contextID)
		ctx = requestcontext.WithTime(ctx, time.Now())
		w.Header().Set(Header, contextID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
