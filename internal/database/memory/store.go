// Package memory is an in-process repository backend.
// Transactions are serialised and work on a private copy of the state
// that replaces the committed state on Commit.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

type pairKey struct {
	userID    string
	speciesID int
}

type state struct {
	users       map[string]domain.User
	inventories map[string][]domain.InventoryStack
	dragons     map[pairKey]domain.Dragon
	missions    map[pairKey]domain.Mission
	plots       map[string]domain.Plot
}

func newState() *state {
	return &state{
		users:       make(map[string]domain.User),
		inventories: make(map[string][]domain.InventoryStack),
		dragons:     make(map[pairKey]domain.Dragon),
		missions:    make(map[pairKey]domain.Mission),
		plots:       make(map[string]domain.Plot),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.inventories {
		c.inventories[k] = append([]domain.InventoryStack(nil), v...)
	}
	for k, v := range s.dragons {
		c.dragons[k] = v
	}
	for k, v := range s.missions {
		c.missions[k] = v
	}
	for k, v := range s.plots {
		c.plots[k] = v
	}
	return c
}

// Store implements repository.Store in memory
type Store struct {
	txMu sync.Mutex // held for the lifetime of a transaction

	mu      sync.RWMutex // guards committed and species
	data    *state
	species map[int]domain.Species

	now func() time.Time
}

var _ repository.Store = (*Store)(nil)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		data:    newState(),
		species: make(map[int]domain.Species),
		now:     time.Now,
	}
}

// BeginTx starts a serialised transaction
func (s *Store) BeginTx(ctx context.Context) (repository.GameTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.txMu.Lock()

	s.mu.RLock()
	work := s.data.clone()
	s.mu.RUnlock()

	return &tx{store: s, work: work}, nil
}

// GetUserByID returns a committed user
func (s *Store) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.data.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// GetUserByUsername returns a committed user by exact username
func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// GetUserByEmail returns a committed user by exact email
func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// ConfirmEmail marks the user's address as confirmed
func (s *Store) ConfirmEmail(_ context.Context, userID string) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.data.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.EmailConfirmed = true
	u.UpdatedAt = s.now()
	s.data.users[userID] = u
	return nil
}

// ListSpecies returns the catalog ordered by ID
func (s *Store) ListSpecies(_ context.Context) ([]domain.Species, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Species, 0, len(s.species))
	for _, sp := range s.species {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetSpeciesByID returns one catalog entry
func (s *Store) GetSpeciesByID(_ context.Context, id int) (*domain.Species, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.species[id]
	if !ok {
		return nil, domain.ErrSpeciesNotFound
	}
	return &sp, nil
}

// GetSpeciesByName returns one catalog entry by exact name
func (s *Store) GetSpeciesByName(_ context.Context, name string) (*domain.Species, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sp := range s.species {
		if sp.Name == name {
			return &sp, nil
		}
	}
	return nil, domain.ErrSpeciesNotFound
}

// UpsertSpecies inserts or replaces catalog entries keyed by ID
func (s *Store) UpsertSpecies(_ context.Context, species []domain.Species) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sp := range species {
		if sp.Weight <= 0 {
			return domain.ErrInvalidWeight
		}
		s.species[sp.ID] = sp
	}
	return nil
}

type tx struct {
	store *Store
	work  *state
	done  bool
}

func (t *tx) finish() error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	return nil
}

func (t *tx) Commit(_ context.Context) error {
	if err := t.finish(); err != nil {
		return err
	}
	t.store.mu.Lock()
	t.store.data = t.work
	t.store.mu.Unlock()
	t.store.txMu.Unlock()
	return nil
}

func (t *tx) Rollback(_ context.Context) error {
	if err := t.finish(); err != nil {
		return err
	}
	t.store.txMu.Unlock()
	return nil
}

func (t *tx) InsertUser(_ context.Context, user *domain.User) error {
	for _, u := range t.work.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := t.store.now()
	user.CreatedAt, user.UpdatedAt = now, now
	t.work.users[user.ID] = *user
	return nil
}

func (t *tx) GetUserForUpdate(_ context.Context, userID string) (*domain.User, error) {
	u, ok := t.work.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (t *tx) UpdateUser(_ context.Context, user domain.User) error {
	existing, ok := t.work.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	existing.Coins = user.Coins
	existing.LoginStreak = user.LoginStreak
	existing.LastRewardDate = user.LastRewardDate
	existing.UpdatedAt = t.store.now()
	t.work.users[user.ID] = existing
	return nil
}

func (t *tx) GetInventory(_ context.Context, userID string) (*domain.Inventory, error) {
	return &domain.Inventory{
		UserID: userID,
		Stacks: append([]domain.InventoryStack(nil), t.work.inventories[userID]...),
	}, nil
}

func (t *tx) UpdateInventory(_ context.Context, userID string, inventory domain.Inventory) error {
	stacks := make([]domain.InventoryStack, 0, len(inventory.Stacks))
	for _, s := range inventory.Stacks {
		if s.Quantity > 0 {
			stacks = append(stacks, s)
		}
	}
	t.work.inventories[userID] = stacks
	return nil
}

func (t *tx) GetDragon(_ context.Context, userID string, speciesID int) (*domain.Dragon, error) {
	d, ok := t.work.dragons[pairKey{userID, speciesID}]
	if !ok {
		return nil, domain.ErrDragonNotFound
	}
	return &d, nil
}

func (t *tx) ListDragons(_ context.Context, userID string) ([]domain.Dragon, error) {
	var out []domain.Dragon
	for k, d := range t.work.dragons {
		if k.userID == userID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SpeciesID < out[j].SpeciesID })
	return out, nil
}

func (t *tx) SaveDragon(_ context.Context, dragon domain.Dragon) error {
	t.work.dragons[pairKey{dragon.UserID, dragon.SpeciesID}] = dragon
	return nil
}

func (t *tx) GetMission(_ context.Context, userID string, speciesID int) (*domain.Mission, error) {
	m, ok := t.work.missions[pairKey{userID, speciesID}]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (t *tx) ListMissions(_ context.Context, userID string) ([]domain.Mission, error) {
	var out []domain.Mission
	for k, m := range t.work.missions {
		if k.userID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SpeciesID < out[j].SpeciesID })
	return out, nil
}

func (t *tx) SaveMission(_ context.Context, mission domain.Mission) error {
	t.work.missions[pairKey{mission.UserID, mission.SpeciesID}] = mission
	return nil
}

func (t *tx) GetPlot(_ context.Context, userID string) (*domain.Plot, error) {
	p, ok := t.work.plots[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (t *tx) SavePlot(_ context.Context, plot domain.Plot) error {
	t.work.plots[plot.UserID] = plot
	return nil
}
