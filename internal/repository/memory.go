package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/UdayPS-4o/tradewithus/internal/models"
)

// In-memory implementations of the repository interfaces, matching the Mongo
// implementations' semantics (unique business keys, sentinel errors, replace
// requiring an existing document). Used by tests and local development
// without a database.

type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by hex object id
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: map[string]models.User{}}
}

func (r *MemoryUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID.Hex()] = *u
	return nil
}

func (r *MemoryUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := u
	return &out, nil
}

func (r *MemoryUserRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *MemoryUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

type MemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[string]models.Profile // keyed by profileId
}

func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{profiles: map[string]models.Profile{}}
}

func (r *MemoryProfileRepo) FindByProfileID(_ context.Context, profileID string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[profileID]
	if !ok {
		return nil, ErrNotFound
	}
	out := p
	return &out, nil
}

func (r *MemoryProfileRepo) FindAll(_ context.Context) ([]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *MemoryProfileRepo) Create(_ context.Context, p *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.ProfileID]; ok {
		return ErrDuplicate
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.profiles[p.ProfileID] = *p
	return nil
}

func (r *MemoryProfileRepo) Replace(_ context.Context, profileID string, p *models.Profile) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.profiles[profileID]
	if !ok {
		return nil, ErrNotFound
	}
	p.ProfileID = profileID
	p.ID = existing.ID
	r.profiles[profileID] = *p
	out := *p
	return &out, nil
}

func (r *MemoryProfileRepo) Delete(_ context.Context, profileID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profileID]; !ok {
		return false, nil
	}
	delete(r.profiles, profileID)
	return true, nil
}

func (r *MemoryProfileRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.profiles)), nil
}

type MemoryProductRepo struct {
	mu       sync.RWMutex
	products map[string]models.Product // keyed by productId
}

func NewMemoryProductRepo() *MemoryProductRepo {
	return &MemoryProductRepo{products: map[string]models.Product{}}
}

func (r *MemoryProductRepo) FindByProductID(_ context.Context, productID string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[productID]
	if !ok {
		return nil, ErrNotFound
	}
	out := p
	return &out, nil
}

func (r *MemoryProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *MemoryProductRepo) FindBySellerID(_ context.Context, sellerID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Product{}
	for _, p := range r.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryProductRepo) Create(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ProductID]; ok {
		return ErrDuplicate
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products[p.ProductID] = *p
	return nil
}

func (r *MemoryProductRepo) Replace(_ context.Context, productID string, p *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.products[productID]
	if !ok {
		return nil, ErrNotFound
	}
	p.ProductID = productID
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.products[productID] = *p
	out := *p
	return &out, nil
}

func (r *MemoryProductRepo) Delete(_ context.Context, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[productID]; !ok {
		return false, nil
	}
	delete(r.products, productID)
	return true, nil
}

func (r *MemoryProductRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}
