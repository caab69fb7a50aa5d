package store

import "context"

// Logical keys for the three pieces of persisted state. The names are kept
// from the original storefront so existing data stays addressable.
const (
	DirectoryKey       = "ads_users_v1"
	SessionKey         = "ads_logged_email_v1"
	SelectedServiceKey = "ads_selected_service_v1"
)

// Store is a flat key-value adapter. Absence of a key is not an error: Get
// reports it through the second return value. Writes replace whole values;
// concurrent writers are last-write-wins.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by backends that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
