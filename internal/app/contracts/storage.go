package contracts

import "context"

// SessionStorage is the persisted key/value cache owned by the session store.
// Keys are already namespaced, e.g. "@OdontoCare:token".
type SessionStorage interface {
	// GetItem reports found=false for a missing key.
	GetItem(ctx context.Context, key string) (value string, found bool, err error)
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem succeeds when the key is already absent.
	RemoveItem(ctx context.Context, key string) error
}
