package handlers

import (
	"context"
	"fmt"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"digimart.backend/internal/domain/entities"
	domainerrors "digimart.backend/internal/domain/errors"
	"digimart.backend/internal/interfaces/http/middleware"
)

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub(users ...*entities.User) *userRepoStub {
	s := &userRepoStub{users: map[uuid.UUID]*entities.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *userRepoStub) ListSellers(_ context.Context, status entities.SellerStatus, offset, limit int) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range s.users {
		if u.Role != entities.UserRoleSeller && u.SellerStatus == entities.SellerStatusNone {
			continue
		}
		if status != "" && u.SellerStatus != status {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

type productRepoStub struct {
	products map[uuid.UUID]*entities.Product
}

func newProductRepoStub(products ...*entities.Product) *productRepoStub {
	s := &productRepoStub{products: map[uuid.UUID]*entities.Product{}}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *productRepoStub) Create(_ context.Context, product *entities.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	s.products[product.ID] = product
	return nil
}

func (s *productRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return p, nil
}

func (s *productRepoStub) Update(_ context.Context, product *entities.Product) error {
	if _, ok := s.products[product.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.products[product.ID] = product
	return nil
}

func (s *productRepoStub) ListBySeller(_ context.Context, sellerID uuid.UUID) ([]*entities.Product, error) {
	var out []*entities.Product
	for _, p := range s.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *productRepoStub) ListPublic(_ context.Context, q *entities.CatalogQuery) ([]*entities.CatalogItem, int64, error) {
	var out []*entities.CatalogItem
	for _, p := range s.products {
		if !p.PubliclyVisible() {
			continue
		}
		if q.Category != "" && p.Category.String != q.Category {
			continue
		}
		out = append(out, &entities.CatalogItem{
			ID:    p.ID,
			Title: p.Title,
			Price: p.Price,
		})
	}
	return out, int64(len(out)), nil
}

type reviewRepoStub struct {
	reviews []*entities.Review
}

func (s *reviewRepoStub) Create(_ context.Context, review *entities.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	s.reviews = append(s.reviews, review)
	return nil
}

func (s *reviewRepoStub) ListByProduct(_ context.Context, productID uuid.UUID) ([]*entities.Review, error) {
	var out []*entities.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

type blobStoreStub struct {
	blobs map[string][]byte
	next  int
}

func newBlobStoreStub() *blobStoreStub {
	return &blobStoreStub{blobs: map[string][]byte{}}
}

func (s *blobStoreStub) Put(_ context.Context, data []byte, _ string) (string, error) {
	s.next++
	ref := fmt.Sprintf("blob-%d", s.next)
	s.blobs[ref] = data
	return ref, nil
}

func (s *blobStoreStub) Delete(_ context.Context, ref string) error {
	delete(s.blobs, ref)
	return nil
}

func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}
