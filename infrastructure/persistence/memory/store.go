/*
Package memory is an in-process storage backend with the same repository
contracts as mysql. It backs local development (database.type "memory") and
the application-layer tests. Entities are stored as reconstruction DTO
values, so the unit of work can roll back by snapshotting and restoring the
maps.
*/
package memory

import (
	"sync"

	"comedor/domain/catalog"
	"comedor/domain/order"
	"comedor/domain/user"
)

// Store holds every table as a map keyed by ID. One mutex guards the whole
// store; contention is irrelevant at this scale.
type Store struct {
	mu sync.RWMutex

	nextOrderID     int64
	nextOrderLineID int64
	nextProductID   int64
	nextCategoryID  int64
	nextUserID      int64
	nextAddressID   int64

	orders     map[int64]order.ReconstructionDTO
	products   map[int64]catalog.ProductReconstructionDTO
	categories map[int64]catalog.CategoryReconstructionDTO
	users      map[int64]user.UserReconstructionDTO
	addresses  map[int64]user.AddressReconstructionDTO
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders:     make(map[int64]order.ReconstructionDTO),
		products:   make(map[int64]catalog.ProductReconstructionDTO),
		categories: make(map[int64]catalog.CategoryReconstructionDTO),
		users:      make(map[int64]user.UserReconstructionDTO),
		addresses:  make(map[int64]user.AddressReconstructionDTO),
	}
}

type snapshot struct {
	nextOrderID     int64
	nextOrderLineID int64
	nextProductID   int64
	nextCategoryID  int64
	nextUserID      int64
	nextAddressID   int64

	orders     map[int64]order.ReconstructionDTO
	products   map[int64]catalog.ProductReconstructionDTO
	categories map[int64]catalog.CategoryReconstructionDTO
	users      map[int64]user.UserReconstructionDTO
	addresses  map[int64]user.AddressReconstructionDTO
}

// takeSnapshot deep-copies the store state. Order line slices are copied
// element by element; every other field is a value.
func (s *Store) takeSnapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		nextOrderID:     s.nextOrderID,
		nextOrderLineID: s.nextOrderLineID,
		nextProductID:   s.nextProductID,
		nextCategoryID:  s.nextCategoryID,
		nextUserID:      s.nextUserID,
		nextAddressID:   s.nextAddressID,
		orders:          make(map[int64]order.ReconstructionDTO, len(s.orders)),
		products:        make(map[int64]catalog.ProductReconstructionDTO, len(s.products)),
		categories:      make(map[int64]catalog.CategoryReconstructionDTO, len(s.categories)),
		users:           make(map[int64]user.UserReconstructionDTO, len(s.users)),
		addresses:       make(map[int64]user.AddressReconstructionDTO, len(s.addresses)),
	}
	for id, dto := range s.orders {
		dto.Lines = append([]order.LineItem(nil), dto.Lines...)
		snap.orders[id] = dto
	}
	for id, dto := range s.products {
		snap.products[id] = dto
	}
	for id, dto := range s.categories {
		snap.categories[id] = dto
	}
	for id, dto := range s.users {
		snap.users[id] = dto
	}
	for id, dto := range s.addresses {
		snap.addresses[id] = dto
	}
	return snap
}

// restoreSnapshot replaces the store state with a previously taken snapshot.
func (s *Store) restoreSnapshot(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOrderID = snap.nextOrderID
	s.nextOrderLineID = snap.nextOrderLineID
	s.nextProductID = snap.nextProductID
	s.nextCategoryID = snap.nextCategoryID
	s.nextUserID = snap.nextUserID
	s.nextAddressID = snap.nextAddressID
	s.orders = snap.orders
	s.products = snap.products
	s.categories = snap.categories
	s.users = snap.users
	s.addresses = snap.addresses
}
