package cart

import (
	"context"
	"sync"
)

//go:generate mockgen -source=cart_store.go -destination=../mock/cart/cart_store_mock.go -package=mock
type Repository interface {
	Load(ctx context.Context, cardCode string) (State, error)
	Save(ctx context.Context, cardCode string, state State) error
	Clear(ctx context.Context, cardCode string) error
}

// memoryRepository menyimpan snapshot keranjang di map per card code.
// Dipakai di test dan sebagai fallback tanpa Redis.
type memoryRepository struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		states: make(map[string]State),
	}
}

func (r *memoryRepository) Load(ctx context.Context, cardCode string) (State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[cardCode]
	if !ok {
		return State{}, nil
	}

	// copy supaya caller tidak memegang slice internal
	cloned := State{Lines: make([]Line, len(state.Lines))}
	copy(cloned.Lines, state.Lines)
	if state.Location != nil {
		loc := *state.Location
		cloned.Location = &loc
	}
	return cloned, nil
}

func (r *memoryRepository) Save(ctx context.Context, cardCode string, state State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cloned := State{Lines: make([]Line, len(state.Lines))}
	copy(cloned.Lines, state.Lines)
	if state.Location != nil {
		loc := *state.Location
		cloned.Location = &loc
	}
	r.states[cardCode] = cloned
	return nil
}

func (r *memoryRepository) Clear(ctx context.Context, cardCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, cardCode)
	return nil
}
