package middleware

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type identityKey struct{}

// identity carries the authenticated user from Auth back out to the
// middleware wrapped around it.
type identity struct {
	mu sync.Mutex
	id uuid.UUID
}

func withIdentity(ctx context.Context) (context.Context, *identity) {
	ident := &identity{}
	return context.WithValue(ctx, identityKey{}, ident), ident
}

func recordIdentity(ctx context.Context, userID uuid.UUID) {
	if ident, ok := ctx.Value(identityKey{}).(*identity); ok {
		ident.mu.Lock()
		ident.id = userID
		ident.mu.Unlock()
	}
}

func (i *identity) userID() (uuid.UUID, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.id, i.id != uuid.Nil
}
