// Package memory is an in-process implementation of the persistence layer. It backs the
// "memory" store driver for local runs and the ledger tests. A single mutex guards every
// table, so each repository call is atomic with respect to all others.
package memory

import (
	"context"
	"sync"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/google/uuid"
)

type usageKey struct {
	subjectID   uuid.UUID
	feature     entity.FeatureType
	periodStart int64
}

type likeKey struct {
	from uuid.UUID
	to   uuid.UUID
	kind entity.LikeKind
}

type pairKey struct {
	a uuid.UUID
	b uuid.UUID
}

// Store holds every table.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	profiles    map[uuid.UUID]*entity.Profile
	locations   map[uuid.UUID]*entity.IndexedLocation
	venues      map[uuid.UUID]*entity.Venue
	boosts      map[uuid.UUID]*entity.Boost
	memberships map[uuid.UUID]*entity.Membership
	usages      map[usageKey]*entity.FeatureUsage
	likes       map[likeKey]*entity.Like
	matches     map[pairKey]*entity.Match
	points      map[uuid.UUID]int
	devices     map[uuid.UUID]*entity.SubjectDevice

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		profiles:    make(map[uuid.UUID]*entity.Profile),
		locations:   make(map[uuid.UUID]*entity.IndexedLocation),
		venues:      make(map[uuid.UUID]*entity.Venue),
		boosts:      make(map[uuid.UUID]*entity.Boost),
		memberships: make(map[uuid.UUID]*entity.Membership),
		usages:      make(map[usageKey]*entity.FeatureUsage),
		likes:       make(map[likeKey]*entity.Like),
		matches:     make(map[pairKey]*entity.Match),
		points:      make(map[uuid.UUID]int),
		devices:     make(map[uuid.UUID]*entity.SubjectDevice),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// snapshot copies every table so a failed transaction can be undone.
func (s *Store) snapshot() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := NewStore()
	for k, v := range s.profiles {
		cp.profiles[k] = cloneProfile(v)
	}
	for k, v := range s.locations {
		cp.locations[k] = cloneLocation(v)
	}
	for k, v := range s.venues {
		cp.venues[k] = cloneVenue(v)
	}
	for k, v := range s.boosts {
		b := *v
		cp.boosts[k] = &b
	}
	for k, v := range s.memberships {
		cp.memberships[k] = cloneMembership(v)
	}
	for k, v := range s.usages {
		u := *v
		cp.usages[k] = &u
	}
	for k, v := range s.likes {
		l := *v
		cp.likes[k] = &l
	}
	for k, v := range s.matches {
		m := *v
		cp.matches[k] = &m
	}
	for k, v := range s.points {
		cp.points[k] = v
	}
	for k, v := range s.devices {
		d := *v
		cp.devices[k] = &d
	}

	return cp
}

func (s *Store) restore(from *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles = from.profiles
	s.locations = from.locations
	s.venues = from.venues
	s.boosts = from.boosts
	s.memberships = from.memberships
	s.usages = from.usages
	s.likes = from.likes
	s.matches = from.matches
	s.points = from.points
	s.devices = from.devices
}

// transactionManager serializes transactions and rolls a failed one back from a snapshot.
// Writes made outside a transaction while one is running are lost if it rolls back, which
// is acceptable for the single-process uses of this driver.
type transactionManager struct {
	store *Store
}

// NewTransactionManager is the constructor for the in-memory TransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn with repositories bound to the store.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	before := tm.store.snapshot()

	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(before)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.store.restore(before)

		return err
	}

	return nil
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.store)
}

func (f *repositoryFactory) NewGeoIndexRepository() repository.GeoIndexRepository {
	return NewGeoIndexRepository(f.store)
}

func (f *repositoryFactory) NewVenueRepository() repository.VenueRepository {
	return NewVenueRepository(f.store)
}

func (f *repositoryFactory) NewLikeRepository() repository.LikeRepository {
	return NewLikeRepository(f.store)
}

func (f *repositoryFactory) NewMembershipRepository() repository.MembershipRepository {
	return NewMembershipRepository(f.store)
}

func (f *repositoryFactory) NewBoostRepository() repository.BoostRepository {
	return NewBoostRepository(f.store)
}

func (f *repositoryFactory) NewFeatureUsageRepository() repository.FeatureUsageRepository {
	return NewFeatureUsageRepository(f.store)
}

func (f *repositoryFactory) NewPointRepository() repository.PointRepository {
	return NewPointRepository(f.store)
}

func cloneProfile(p *entity.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	cp := *p
	if p.OwnerUserID != nil {
		owner := *p.OwnerUserID
		cp.OwnerUserID = &owner
	}
	if p.Location != nil {
		loc := *p.Location
		cp.Location = &loc
	}

	return &cp
}

func cloneLocation(l *entity.IndexedLocation) *entity.IndexedLocation {
	if l == nil {
		return nil
	}
	cp := *l

	return &cp
}

func cloneVenue(v *entity.Venue) *entity.Venue {
	if v == nil {
		return nil
	}
	cp := *v
	cp.Amenities = append([]string(nil), v.Amenities...)

	return &cp
}

func cloneMembership(m *entity.Membership) *entity.Membership {
	if m == nil {
		return nil
	}
	cp := *m
	if m.CancellationDate != nil {
		at := *m.CancellationDate
		cp.CancellationDate = &at
	}

	return &cp
}

func newIDIfNil(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}

	return id
}
