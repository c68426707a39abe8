package repository

import (
	"context"
	"sync"
	"time"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

// MemoryStore is an in-process implementation of all four repositories,
// used for local development and tests. Expiry is enforced lazily on read,
// matching the DynamoDB repositories.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]memoryEntry[entities.ConversationState]
	carts  map[string]memoryEntry[entities.Cart]
	orders map[string]entities.Order
	events map[string]memoryEntry[time.Time]
	now    func() time.Time
}

type memoryEntry[T any] struct {
	value     T
	expiresAt time.Time
}

func (e memoryEntry[T]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

var (
	_ interfaces.IConversationStateRepository = (*MemoryStore)(nil)
	_ interfaces.IDedupRepository             = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[string]memoryEntry[entities.ConversationState]),
		carts:  make(map[string]memoryEntry[entities.Cart]),
		orders: make(map[string]entities.Order),
		events: make(map[string]memoryEntry[time.Time]),
		now:    time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, customerID string) (entities.ConversationState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.states[customerID]
	if !ok || e.expired(s.now()) {
		return entities.ConversationState{}, false, nil
	}
	return e.value, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, customerID string, state entities.ConversationState, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[customerID] = memoryEntry[entities.ConversationState]{value: state, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, customerID)
	return nil
}

// CartStore exposes the cart repository view. Get/Save/Delete collide with
// the state repository method set, so carts live behind a wrapper type.
func (s *MemoryStore) CartStore() *MemoryCartStore { return &MemoryCartStore{s: s} }

type MemoryCartStore struct {
	s *MemoryStore
}

var _ interfaces.ICartRepository = (*MemoryCartStore)(nil)

func (c *MemoryCartStore) Get(ctx context.Context, customerID string) (entities.Cart, bool, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	e, ok := c.s.carts[customerID]
	if !ok || e.expired(c.s.now()) {
		return entities.Cart{}, false, nil
	}
	return e.value, true, nil
}

func (c *MemoryCartStore) Save(ctx context.Context, customerID string, cart entities.Cart, ttl time.Duration) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.carts[customerID] = memoryEntry[entities.Cart]{value: cart, expiresAt: c.s.now().Add(ttl)}
	return nil
}

func (c *MemoryCartStore) Delete(ctx context.Context, customerID string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	delete(c.s.carts, customerID)
	return nil
}

// OrderStore exposes the order repository view.
func (s *MemoryStore) OrderStore() *MemoryOrderStore { return &MemoryOrderStore{s: s} }

type MemoryOrderStore struct {
	s *MemoryStore
}

var _ interfaces.IOrderRepository = (*MemoryOrderStore)(nil)

func (o *MemoryOrderStore) Save(ctx context.Context, order entities.Order, ttl time.Duration) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	o.s.orders[order.ID] = order
	return nil
}

func (o *MemoryOrderStore) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	return o.s.orders[orderID], nil
}

func (o *MemoryOrderStore) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	order, ok := o.s.orders[orderID]
	if !ok {
		return nil
	}
	order.Status = status
	o.s.orders[orderID] = order
	return nil
}

func (s *MemoryStore) Seen(ctx context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[eventID]
	return ok && !e.expired(s.now()), nil
}

// Mark records the event id under the lock, so concurrent deliveries of the
// same id serialize and only the first reports alreadySeen=false.
func (s *MemoryStore) Mark(ctx context.Context, eventID string, receivedAt time.Time, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.events[eventID]; ok && !e.expired(s.now()) {
		return true, nil
	}
	s.events[eventID] = memoryEntry[time.Time]{value: receivedAt, expiresAt: s.now().Add(ttl)}
	return false, nil
}
