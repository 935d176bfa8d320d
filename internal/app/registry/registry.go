package registry

import (
	"context"
	"sync"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
)

// Registry tracks the chat connections held by this node, grouped by user.
// While a user has at least one connection a per-user worker runs; it is
// cancelled when the last connection goes away.
type Registry struct {
	mu         sync.RWMutex
	clients    map[string]contracts.Client            // client_id → client
	users      map[string]map[string]contracts.Client // user_id → client_id → client
	workers    map[string]context.CancelFunc
	run_worker func(ctx context.Context, userID string)
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]contracts.Client),
		users:   make(map[string]map[string]contracts.Client),
		workers: make(map[string]context.CancelFunc),
	}
}

// RunWorker sets the function started for each newly connected user.
func (h *Registry) RunWorker(run_worker func(ctx context.Context, userID string)) {
	h.run_worker = run_worker
}

func (h *Registry) Register(c contracts.Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	userID := c.UserID()
	if h.users[userID] == nil {
		h.users[userID] = make(map[string]contracts.Client)
		if h.run_worker != nil {
			ctx, cancel := context.WithCancel(context.Background())
			h.workers[userID] = cancel
			go h.run_worker(ctx, userID)
		}
	}
	h.users[userID][c.ID()] = c
	h.clients[c.ID()] = c
}

func (h *Registry) Unregister(c contracts.Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	userID := c.UserID()
	if _, ok := h.clients[c.ID()]; !ok {
		return
	}
	delete(h.users[userID], c.ID())
	delete(h.clients, c.ID())
	if len(h.users[userID]) == 0 {
		delete(h.users, userID)
		if cancel := h.workers[userID]; cancel != nil {
			cancel()
			delete(h.workers, userID)
		}
	}
}

// SendTo delivers data to every connection of userID.
func (h *Registry) SendTo(ctx context.Context, userID string, data []byte) {
	h.mu.RLock()
	targets := make([]contracts.Client, 0, len(h.users[userID]))
	for _, c := range h.users[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()
	for _, c := range targets {
		_ = c.Send(ctx, data)
	}
}

func (h *Registry) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll closes every connection, used on shutdown.
func (h *Registry) CloseAll() {
	h.mu.RLock()
	targets := make([]contracts.Client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()
	for _, c := range targets {
		c.Close()
	}
}
