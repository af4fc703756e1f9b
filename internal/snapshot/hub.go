// Package snapshot implements the collection snapshot hub: a producer that
// emits immutable, full-collection snapshots whenever a collection changes,
// and a subscription mechanism for consumers that recompute derived state on
// each emission. There is no shared mutable cache between emissions; every
// snapshot is a fresh read from the store.
package snapshot

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wealthflow/wealthflow-backend/internal/model"
)

// Collection identifies one of the three per-user collections.
type Collection string

// The three collections the hub tracks.
const (
	CollectionAccounts     Collection = "accounts"
	CollectionStocks       Collection = "stocks"
	CollectionTransactions Collection = "transactions"
)

// Snapshot is a full, point-in-time copy of one collection for one user.
// Only the field matching Collection is populated.
type Snapshot struct {
	UserID       string
	Collection   Collection
	Accounts     []model.Account
	Stocks       []model.StockHolding
	Transactions []model.Transaction
	LoadedAt     time.Time
}

// Data bundles a full snapshot of all three collections for one user.
// Collections are loaded independently; no cross-collection atomicity is
// guaranteed or required.
type Data struct {
	Accounts     []model.Account
	Stocks       []model.StockHolding
	Transactions []model.Transaction
}

// Loader reads full collections from the store.
type Loader interface {
	LoadAccounts(userID string) ([]model.Account, error)
	LoadStocks(userID string) ([]model.StockHolding, error)
	LoadTransactions(userID string) ([]model.Transaction, error)
}

// Hub broadcasts collection snapshots to per-user subscribers.
// Mutating services call Invalidate after a successful write; the hub reloads
// the collection and pushes the fresh snapshot to every subscriber of that
// user. Slow subscribers drop intermediate snapshots rather than blocking the
// producer.
type Hub struct {
	loader Loader

	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan Snapshot
}

// NewHub creates a Hub backed by the given loader.
func NewHub(loader Loader) *Hub {
	return &Hub{
		loader: loader,
		subs:   make(map[string]map[int]chan Snapshot),
	}
}

// Subscribe registers a subscriber for all collection snapshots of one user.
// The returned cancel function must be called to release the subscription.
func (h *Hub) Subscribe(userID string) (<-chan Snapshot, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	// Buffer of one so a single pending snapshot survives a slow consumer.
	ch := make(chan Snapshot, 1)
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[int]chan Snapshot)
	}
	h.subs[userID][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.subs[userID]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(h.subs, userID)
			}
		}
	}

	return ch, cancel
}

// Invalidate reloads one collection and broadcasts the fresh snapshot to all
// subscribers of the user. Reload failures are logged and swallowed: the
// in-memory view simply keeps its previous snapshot, which is the recovery
// mechanism for failed or phantom writes.
func (h *Hub) Invalidate(userID string, collection Collection) {
	snap := Snapshot{
		UserID:     userID,
		Collection: collection,
		LoadedAt:   time.Now().UTC(),
	}

	var err error
	switch collection {
	case CollectionAccounts:
		snap.Accounts, err = h.loader.LoadAccounts(userID)
	case CollectionStocks:
		snap.Stocks, err = h.loader.LoadStocks(userID)
	case CollectionTransactions:
		snap.Transactions, err = h.loader.LoadTransactions(userID)
	}
	if err != nil {
		log.Printf("snapshot reload failed for %s/%s: %v", userID, collection, err)
		return
	}

	h.broadcast(snap)
}

func (h *Hub) broadcast(snap Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[snap.UserID] {
		select {
		case ch <- snap:
		default:
			// Drop the stale pending snapshot and replace it with the new one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// LoadAll loads a full three-collection snapshot for one user, reading the
// collections concurrently.
func (h *Hub) LoadAll(ctx context.Context, userID string) (Data, error) {
	var data Data

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.Accounts, err = h.loader.LoadAccounts(userID)
		return err
	})
	g.Go(func() error {
		var err error
		data.Stocks, err = h.loader.LoadStocks(userID)
		return err
	})
	g.Go(func() error {
		var err error
		data.Transactions, err = h.loader.LoadTransactions(userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return Data{}, err
	}

	return data, nil
}
