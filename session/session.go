package session

import (
	"sync"

	"github.com/google/uuid"

	models "github.com/Dawood573189/simple-online-shop/model"
)

// Store owns the per-session carts. Each session holds exactly one cart,
// created empty when the session starts and discarded when it ends.
// Carts live only for the lifetime of the process.
type Store struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*models.Cart)}
}

// Get returns the cart for an existing session id.
func (s *Store) Get(id string) (*models.Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	return c, ok
}

// GetOrCreate returns the cart for id, minting a fresh session with an
// empty cart when id is empty or unknown. The returned id is the one the
// caller should hand back to the client.
func (s *Store) GetOrCreate(id string) (string, *models.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if c, ok := s.carts[id]; ok {
			return id, c
		}
	}
	id = uuid.NewString()
	c := &models.Cart{}
	s.carts[id] = c
	return id, c
}

// End discards the session and its cart.
func (s *Store) End(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
