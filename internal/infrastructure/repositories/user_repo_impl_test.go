package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"digimart.backend/internal/domain/entities"
	domainerrors "digimart.backend/internal/domain/errors"
)

func TestUserRepository_CreateAndFinders(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: "hash",
		Role:         entities.UserRoleBuyer,
		SellerStatus: entities.SellerStatusNone,
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)
	require.Equal(t, entities.UserRoleBuyer, byID.Role)
	require.False(t, byID.StoreName.Valid)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_UpdateWritesAndClearsSellerFields(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		Email:        "bob@example.com",
		Username:     "bob",
		PasswordHash: "hash",
		Role:         entities.UserRoleBuyer,
		SellerStatus: entities.SellerStatusNone,
	}
	require.NoError(t, repo.Create(ctx, user))

	user.Role = entities.UserRoleSeller
	user.SellerStatus = entities.SellerStatusPending
	user.StoreName = null.StringFrom("Bob's Books")
	user.SellerBio = null.StringFrom("Selling books since forever")
	user.SellerAddress = null.StringFrom("1 Main Street")
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, entities.UserRoleSeller, got.Role)
	require.Equal(t, entities.SellerStatusPending, got.SellerStatus)
	require.Equal(t, "Bob's Books", got.StoreName.String)

	// A rejection clears the qualification bundle back to NULL.
	user.Role = entities.UserRoleBuyer
	user.SellerStatus = entities.SellerStatusRejected
	user.StoreName = null.String{}
	user.SellerBio = null.String{}
	user.SellerAddress = null.String{}
	require.NoError(t, repo.Update(ctx, user))

	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, entities.UserRoleBuyer, got.Role)
	require.Equal(t, entities.SellerStatusRejected, got.SellerStatus)
	require.False(t, got.StoreName.Valid)
	require.False(t, got.SellerBio.Valid)
	require.False(t, got.SellerAddress.Valid)
}

func TestUserRepository_UpdateAndDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	err := repo.Update(ctx, &entities.User{ID: uuid.New()})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.SoftDelete(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_SoftDeleteHidesUser(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		Email:        "carol@example.com",
		Username:     "carol",
		PasswordHash: "hash",
		Role:         entities.UserRoleBuyer,
		SellerStatus: entities.SellerStatusNone,
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.SoftDelete(ctx, user.ID))

	_, err := repo.GetByID(ctx, user.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_ListSellers(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seed := []*entities.User{
		{Email: "b1@example.com", Username: "b1", Role: entities.UserRoleBuyer, SellerStatus: entities.SellerStatusNone},
		{Email: "s1@example.com", Username: "s1", Role: entities.UserRoleSeller, SellerStatus: entities.SellerStatusPending},
		{Email: "s2@example.com", Username: "s2", Role: entities.UserRoleSeller, SellerStatus: entities.SellerStatusApproved, IsSellerApproved: true},
		{Email: "r1@example.com", Username: "r1", Role: entities.UserRoleBuyer, SellerStatus: entities.SellerStatusRejected},
	}
	for _, u := range seed {
		u.PasswordHash = "hash"
		require.NoError(t, repo.Create(ctx, u))
	}

	all, err := repo.ListSellers(ctx, "", 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 3, "plain buyers are excluded, rejected applicants stay listed")

	pending, err := repo.ListSellers(ctx, entities.SellerStatusPending, 0, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "s1", pending[0].Username)

	rejected, err := repo.ListSellers(ctx, entities.SellerStatusRejected, 0, 10)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	require.Equal(t, "r1", rejected[0].Username)

	limited, err := repo.ListSellers(ctx, "", 0, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}
