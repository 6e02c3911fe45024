//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"pawhaven/internal/infra"
	"pawhaven/internal/infra/store"
	"pawhaven/internal/infra/store/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type StoreE2ETestSuite struct {
	suite.Suite
	store *postgres.Store
	ctx   context.Context
}

func (s *StoreE2ETestSuite) SetupSuite() {
	s.store = setupStore(s.T())
	s.ctx = context.Background()
}

func TestStoreE2ESuite(t *testing.T) {
	suite.Run(t, new(StoreE2ETestSuite))
}

func (s *StoreE2ETestSuite) createPet(name, status string) store.Item {
	item, err := s.store.Create(s.ctx, store.CollectionPets, map[string]any{
		"name":    name,
		"species": "dog",
		"status":  status,
	})
	s.Require().NoError(err)
	return item
}

func (s *StoreE2ETestSuite) TestCreateAndGet() {
	created := s.createPet("Rex", "available")
	s.NotEqual(uuid.Nil, created.ID())
	s.NotEmpty(created.String(store.FieldCreatedAt))

	got, err := s.store.Get(s.ctx, store.CollectionPets, created.ID())
	s.Require().NoError(err)
	s.Equal("Rex", got.String("name"))
	s.Equal("available", got.String("status"))
}

func (s *StoreE2ETestSuite) TestGetMissingReturnsNotFound() {
	_, err := s.store.Get(s.ctx, store.CollectionPets, uuid.New())
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreE2ETestSuite) TestCreateDuplicateIDReturnsDuplicateKey() {
	created := s.createPet("Luna", "available")

	_, err := s.store.Create(s.ctx, store.CollectionPets, map[string]any{
		"id":   created.ID().String(),
		"name": "Luna clone",
	})
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindDuplicateKey))
}

func (s *StoreE2ETestSuite) TestUpdateMergesPatch() {
	created := s.createPet("Milo", "available")

	updated, err := s.store.Update(s.ctx, store.CollectionPets, created.ID(), map[string]any{
		"status": "pending",
	})
	s.Require().NoError(err)
	s.Equal("pending", updated.String("status"))
	s.Equal("Milo", updated.String("name"), "untouched fields survive the patch")
	s.False(updated.Time(store.FieldUpdatedAt).Before(created.Time(store.FieldUpdatedAt)))

	_, err = s.store.Update(s.ctx, store.CollectionPets, uuid.New(), map[string]any{"status": "adopted"})
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreE2ETestSuite) TestDelete() {
	created := s.createPet("Buddy", "available")

	s.Require().NoError(s.store.Delete(s.ctx, store.CollectionPets, created.ID()))

	_, err := s.store.Get(s.ctx, store.CollectionPets, created.ID())
	s.True(infra.IsKind(err, infra.KindNotFound))

	err = s.store.Delete(s.ctx, store.CollectionPets, created.ID())
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreE2ETestSuite) TestFindWithEqAndInFilters() {
	ownerID := uuid.New()
	for _, status := range []string{"pending", "confirming", "completed"} {
		_, err := s.store.Create(s.ctx, store.CollectionAdoptions, map[string]any{
			"user_id": ownerID.String(),
			"status":  status,
		})
		s.Require().NoError(err)
	}

	items, err := s.store.Find(s.ctx, store.CollectionAdoptions,
		store.Where().
			Eq("user_id", ownerID).
			In("status", "pending", "confirming"))
	s.Require().NoError(err)
	s.Len(items, 2)
	for _, it := range items {
		s.Equal(ownerID, it.UUID("user_id"))
		s.Contains([]string{"pending", "confirming"}, it.String("status"))
	}
}

func (s *StoreE2ETestSuite) TestFindWithTimeRange() {
	userID := uuid.New()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := range 3 {
		_, err := s.store.Create(s.ctx, store.CollectionNotifications, map[string]any{
			"user_id": userID.String(),
			"sent_at": base.Add(time.Duration(i) * time.Hour),
		})
		s.Require().NoError(err)
	}

	items, err := s.store.Find(s.ctx, store.CollectionNotifications,
		store.Where().
			Eq("user_id", userID).
			Since("sent_at", base.Add(30*time.Minute)).
			Before("sent_at", base.Add(90*time.Minute)))
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.True(base.Add(time.Hour).Equal(items[0].Time("sent_at")))
}

func (s *StoreE2ETestSuite) TestFindSortDescWithLimit() {
	actorID := uuid.New()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		_, err := s.store.Create(s.ctx, store.CollectionActivityLog, map[string]any{
			"actor_id":   actorID.String(),
			"action":     "adoption.created",
			"created_at": base.Add(time.Duration(i) * time.Minute),
		})
		s.Require().NoError(err)
	}

	items, err := s.store.Find(s.ctx, store.CollectionActivityLog,
		store.Where().
			Eq("actor_id", actorID).
			SortDesc(store.FieldCreatedAt).
			Limit(2))
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.True(base.Add(4*time.Minute).Equal(items[0].Time(store.FieldCreatedAt)))
	s.True(base.Add(3*time.Minute).Equal(items[1].Time(store.FieldCreatedAt)))
}
