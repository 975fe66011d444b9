package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gigflow-api/internal/common"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo"
	"gigflow-api/internal/repo/repo_errors"
	"gigflow-api/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memStore backs the repo fakes. A single mutex guards all three maps so that
// HireBid applies its guard checks and writes as one unit, matching the
// conditional-commit semantics of the SQL implementation.
type memStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
	gigs  map[uuid.UUID]entity.Gig
	bids  map[uuid.UUID]entity.Bid
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uuid.UUID]entity.User),
		gigs:  make(map[uuid.UUID]entity.Gig),
		bids:  make(map[uuid.UUID]entity.Bid),
	}
}

func (s *memStore) snapshot() (map[uuid.UUID]entity.Gig, map[uuid.UUID]entity.Bid) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gigs := make(map[uuid.UUID]entity.Gig, len(s.gigs))
	for id, g := range s.gigs {
		gigs[id] = g
	}
	bids := make(map[uuid.UUID]entity.Bid, len(s.bids))
	for id, b := range s.bids {
		bids[id] = b
	}

	return gigs, bids
}

func (s *memStore) addUser(name string, email string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.users[id] = entity.User{
		Id: id, Name: name, Email: email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	return id
}

func (s *memStore) removeUser(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func (s *memStore) addGig(ownerId uuid.UUID, title string, status string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	now := time.Now().UTC().Format(time.RFC3339)
	s.gigs[id] = entity.Gig{
		Id: id, Title: title, Description: "description of " + title,
		Budget: 500, OwnerId: ownerId, Status: status,
		CreatedAt: now, UpdatedAt: now,
	}

	return id
}

func (s *memStore) addBid(gigId uuid.UUID, freelancerId uuid.UUID, status string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	now := time.Now().UTC().Format(time.RFC3339)
	s.bids[id] = entity.Bid{
		Id: id, GigId: gigId, FreelancerId: freelancerId,
		Price: 100, Message: "pick me", Status: status,
		CreatedAt: now, UpdatedAt: now,
	}

	return id
}

type fakeUserRepo struct {
	store *memStore
}

func (r *fakeUserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &user, nil
}

func (r *fakeUserRepo) DoesUserExistById(ctx context.Context, id string) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, ok := r.store.users[uuidForm]

	return ok, nil
}

type fakeGigRepo struct {
	store *memStore
}

func (r *fakeGigRepo) CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error) {
	ownerUuid, err := uuid.Parse(input.OwnerId)
	if err != nil {
		return uuid.Nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := uuid.New()
	now := time.Now().UTC().Format(time.RFC3339)
	r.store.gigs[id] = entity.Gig{
		Id: id, Title: input.Title, Description: input.Description,
		Budget: input.Budget, OwnerId: ownerUuid, Status: input.Status,
		CreatedAt: now, UpdatedAt: now,
	}

	return id, nil
}

func (r *fakeGigRepo) GetGigById(ctx context.Context, id string) (*entity.Gig, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	gig, ok := r.store.gigs[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &gig, nil
}

func (r *fakeGigRepo) GetOpenGigs(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Gig, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	gigs := make([]entity.Gig, 0)
	for _, gig := range r.store.gigs {
		if gig.Status != common.Open {
			continue
		}
		if search != "" {
			needle := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(gig.Title), needle) &&
				!strings.Contains(strings.ToLower(gig.Description), needle) {
				continue
			}
		}
		gigs = append(gigs, gig)
	}

	sort.Slice(gigs, func(i, j int) bool { return gigs[i].CreatedAt > gigs[j].CreatedAt })

	if pg.Offset >= len(gigs) {
		return []entity.Gig{}, nil
	}
	gigs = gigs[pg.Offset:]
	if pg.Limit < len(gigs) {
		gigs = gigs[:pg.Limit]
	}

	return gigs, nil
}

type fakeBidRepo struct {
	store *memStore
}

func (r *fakeBidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	gigUuid, err := uuid.Parse(input.GigId)
	if err != nil {
		return uuid.Nil, err
	}

	freelancerUuid, err := uuid.Parse(input.FreelancerId)
	if err != nil {
		return uuid.Nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// insert is conditional on the gig still being open, like the SQL one
	gig, ok := r.store.gigs[gigUuid]
	if !ok || gig.Status != common.Open {
		return uuid.Nil, repo_errors.ErrConflict
	}

	id := uuid.New()
	now := time.Now().UTC().Format(time.RFC3339)
	r.store.bids[id] = entity.Bid{
		Id: id, GigId: gigUuid, FreelancerId: freelancerUuid,
		Price: input.Price, Message: input.Message, Status: input.Status,
		CreatedAt: now, UpdatedAt: now,
	}

	return id, nil
}

func (r *fakeBidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bid, ok := r.store.bids[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &bid, nil
}

func (r *fakeBidRepo) GetGigBids(ctx context.Context, gigId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bids := make([]entity.Bid, 0)
	for _, bid := range r.store.bids {
		if bid.GigId == gigUuid {
			bids = append(bids, bid)
		}
	}

	sort.Slice(bids, func(i, j int) bool { return bids[i].CreatedAt < bids[j].CreatedAt })

	if pg.Offset >= len(bids) {
		return []entity.Bid{}, nil
	}
	bids = bids[pg.Offset:]
	if pg.Limit < len(bids) {
		bids = bids[:pg.Limit]
	}

	return bids, nil
}

func (r *fakeBidRepo) HireBid(ctx context.Context, bidId string, gigId string) error {
	bidUuid, err := uuid.Parse(bidId)
	if err != nil {
		return err
	}

	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bid, ok := r.store.bids[bidUuid]
	if !ok || bid.Status != common.Pending {
		return repo_errors.ErrConflict
	}

	gig, ok := r.store.gigs[gigUuid]
	if !ok || gig.Status != common.Open {
		return repo_errors.ErrConflict
	}

	now := time.Now().UTC().Format(time.RFC3339)

	bid.Status = common.Hired
	bid.UpdatedAt = now
	r.store.bids[bidUuid] = bid

	for id, sibling := range r.store.bids {
		if sibling.GigId == gigUuid && id != bidUuid && sibling.Status == common.Pending {
			sibling.Status = common.Rejected
			sibling.UpdatedAt = now
			r.store.bids[id] = sibling
		}
	}

	gig.Status = common.Assigned
	gig.UpdatedAt = now
	r.store.gigs[gigUuid] = gig

	return nil
}

// staleGigRepo serves a fixed stale gig snapshot, standing in for a reader
// that raced a concurrent status change.
type staleGigRepo struct {
	repo.Gig
	stale entity.Gig
}

func (r *staleGigRepo) GetGigById(ctx context.Context, id string) (*entity.Gig, error) {
	gig := r.stale
	return &gig, nil
}

// conflictingBidRepo fails the first n HireBid commits, then delegates.
type conflictingBidRepo struct {
	repo.Bid
	remaining int
}

func (r *conflictingBidRepo) HireBid(ctx context.Context, bidId string, gigId string) error {
	if r.remaining > 0 {
		r.remaining--
		return repo_errors.ErrConflict
	}

	return r.Bid.HireBid(ctx, bidId, gigId)
}

type fakeDiagnostics struct{}

func (fakeDiagnostics) Ping() error { return nil }

func newTestServices(store *memStore) *service.Services {
	repos := &repo.Repositories{
		Diagnostics: fakeDiagnostics{},
		User:        &fakeUserRepo{store},
		Gig:         &fakeGigRepo{store},
		Bid:         &fakeBidRepo{store},
	}

	return service.NewServices(repos, zap.NewNop())
}
