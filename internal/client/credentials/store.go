// Package credentials is the persistent credential store of the client:
// a small key/value table holding the bearer token and the serialized user
// record of the current session.
//
// Ownership: the session manager is the only writer. The API client never
// reads this store; it receives the token value by an explicit call.
package credentials

import "context"

// Storage keys. The two keys are written and deleted together: a session is
// only restorable when both are present.
const (
	KeyToken = "auth_token"
	KeyUser  = "user_data"
)

// Store is a process-independent key/value store for session credentials.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	// SetPair writes token and serialized user atomically.
	SetPair(ctx context.Context, token string, user []byte) error

	// DeletePair removes both session keys atomically.
	DeletePair(ctx context.Context) error
}

// LoadPair reads the persisted session. It returns ok only when both keys
// are present; a lone token or a lone user record is treated as absent.
func LoadPair(ctx context.Context, s Store) (token string, user []byte, ok bool, err error) {
	t, err := s.Get(ctx, KeyToken)
	if err != nil {
		return "", nil, false, err
	}
	u, err := s.Get(ctx, KeyUser)
	if err != nil {
		return "", nil, false, err
	}
	if len(t) == 0 || len(u) == 0 {
		return "", nil, false, nil
	}
	return string(t), u, true, nil
}
