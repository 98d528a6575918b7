package httpadapter

import (
	"context"
	"net/http"
	"strconv"

	"campaign-hub/internal/core/domain"
)

// userHeader carries the numeric id of the calling back-office user. It is
// set by the gateway in front of this service; no authentication happens
// here.
const userHeader = "X-User-ID"

type callerKey struct{}

// identify stores the caller id from userHeader in the request context. A
// malformed header is rejected; a missing one leaves the caller unknown.
func identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status":"error","message":"Invalid ` + userHeader + ` header."}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, id)))
	})
}

// callerID returns the caller identity, or 0 if the request carried none.
func callerID(ctx context.Context) int64 {
	id, _ := ctx.Value(callerKey{}).(int64)
	return id
}

// callerRef is callerID as an optional reference.
func callerRef(ctx context.Context) *int64 {
	if id := callerID(ctx); id != 0 {
		return &id
	}
	return nil
}

func parseInt64Param(raw, entity string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.NotFoundError{Entity: entity, ID: raw}
	}
	return id, nil
}
