package session

import (
	"context"
	"sync"

	"github.com/maheshrc27/gbpflow/pkg/utils"
)

// InMemoryStore keeps sessions for the process lifetime. Token values are
// AES-GCM encrypted at rest and transparently decrypted on Get.
type InMemoryStore struct {
	mu       sync.RWMutex
	key      []byte
	sessions map[string]Session
}

func NewInMemoryStore(key []byte) *InMemoryStore {
	return &InMemoryStore{
		key:      key,
		sessions: make(map[string]Session),
	}
}

func (st *InMemoryStore) Save(ctx context.Context, s *Session) error {
	stored := *s

	encryptedAccess, err := utils.Encrypt([]byte(s.AccessToken), st.key)
	if err != nil {
		return err
	}
	stored.AccessToken = encryptedAccess

	if s.RefreshToken != "" {
		encryptedRefresh, err := utils.Encrypt([]byte(s.RefreshToken), st.key)
		if err != nil {
			return err
		}
		stored.RefreshToken = encryptedRefresh
	}

	st.mu.Lock()
	st.sessions[s.ID] = stored
	st.mu.Unlock()
	return nil
}

func (st *InMemoryStore) Get(ctx context.Context, id string) (*Session, bool, error) {
	st.mu.RLock()
	stored, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	accessToken, err := utils.Decrypt(stored.AccessToken, st.key)
	if err != nil {
		return nil, false, err
	}
	stored.AccessToken = accessToken

	if stored.RefreshToken != "" {
		refreshToken, err := utils.Decrypt(stored.RefreshToken, st.key)
		if err != nil {
			return nil, false, err
		}
		stored.RefreshToken = refreshToken
	}

	return &stored, true, nil
}

func (st *InMemoryStore) Delete(ctx context.Context, id string) error {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
	return nil
}
