//go:build unit

package usecase_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"pawhaven/internal/domain/adoption"
	"pawhaven/internal/domain/pet"
	reqdto "pawhaven/internal/handler/dto/request"
	"pawhaven/internal/infra/repository"
	"pawhaven/internal/infra/store"
	"pawhaven/internal/infra/store/memory"
	"pawhaven/internal/notify"
	"pawhaven/internal/pkg/clock"
	"pawhaven/internal/pkg/errs"
	"pawhaven/internal/usecase"
	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// recordingGateway captures notifications instead of delivering them.
type recordingGateway struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (g *recordingGateway) Notify(_ context.Context, n notify.Notification) (*readmodel.Notification, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, n)
	return &readmodel.Notification{
		ID:        uuid.New(),
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		RelatedID: n.RelatedID,
	}, nil
}

func (g *recordingGateway) all() []notify.Notification {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]notify.Notification, len(g.sent))
	copy(out, g.sent)
	return out
}

func (g *recordingGateway) reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = nil
}

type AdoptionUseCaseTestSuite struct {
	suite.Suite
	clk      *clock.MockClock
	store    *memory.Store
	pets     *repository.PetRepository
	gateway  *recordingGateway
	useCase  usecase.AdoptionUseCase
	adoptRep *repository.AdoptionRepository
}

func TestAdoptionUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AdoptionUseCaseTestSuite))
}

func (s *AdoptionUseCaseTestSuite) SetupTest() {
	s.clk = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.store = memory.New(s.clk)
	s.pets = repository.NewPetRepository(s.store)
	s.adoptRep = repository.NewAdoptionRepository(s.store)
	s.gateway = &recordingGateway{}
	s.useCase = usecase.NewAdoptionUseCase(
		s.adoptRep,
		s.pets,
		repository.NewActivityLogRepository(s.store),
		s.gateway,
		s.clk,
	)
}

func (s *AdoptionUseCaseTestSuite) createPet(status pet.Status) uuid.UUID {
	it, err := s.store.Create(s.T().Context(), store.CollectionPets, map[string]any{
		"name":    "Milo",
		"species": "cat",
		"status":  status,
	})
	require.NoError(s.T(), err)
	return it.ID()
}

func (s *AdoptionUseCaseTestSuite) petStatus(petID uuid.UUID) string {
	petRM, err := s.pets.FindByID(s.T().Context(), petID)
	require.NoError(s.T(), err)
	return petRM.Status
}

func (s *AdoptionUseCaseTestSuite) create(petID uuid.UUID) *readmodel.Adoption {
	created, err := s.useCase.CreateAdoption(s.T().Context(),
		reqdto.CreateAdoptionRequest{PetID: petID}, uuid.New())
	require.NoError(s.T(), err)
	return created
}

func (s *AdoptionUseCaseTestSuite) confirming(petID uuid.UUID) *readmodel.Adoption {
	created := s.create(petID)
	updated, err := s.useCase.SendConfirmation(s.T().Context(), created.ID)
	require.NoError(s.T(), err)
	return updated
}

func (s *AdoptionUseCaseTestSuite) TestCreateAdoption() {
	s.Run("creates a pending adoption for an available pet", func() {
		petID := s.createPet(pet.StatusAvailable)

		created := s.create(petID)
		s.Equal(adoption.StatusPending.String(), created.Status)
		s.Equal(petID, created.PetID)
		s.Equal(pet.StatusAvailable.String(), s.petStatus(petID))
	})

	s.Run("unknown pet", func() {
		_, err := s.useCase.CreateAdoption(s.T().Context(),
			reqdto.CreateAdoptionRequest{PetID: uuid.New()}, uuid.New())
		s.ErrorIs(err, usecase.ErrPetNotFound)
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("pet not available", func() {
		petID := s.createPet(pet.StatusAdopted)

		_, err := s.useCase.CreateAdoption(s.T().Context(),
			reqdto.CreateAdoptionRequest{PetID: petID}, uuid.New())
		s.ErrorIs(err, usecase.ErrPetUnavailable)
		s.ErrorIs(err, errs.ErrConflict)
	})

	s.Run("second active adoption for the same pet", func() {
		petID := s.createPet(pet.StatusAvailable)
		s.create(petID)

		_, err := s.useCase.CreateAdoption(s.T().Context(),
			reqdto.CreateAdoptionRequest{PetID: petID}, uuid.New())
		s.ErrorIs(err, usecase.ErrAdoptionExists)
	})

	s.Run("cancelled adoption frees the pet for a new request", func() {
		petID := s.createPet(pet.StatusAvailable)
		first := s.create(petID)

		_, err := s.useCase.CancelAdoption(s.T().Context(), first.ID, nil)
		s.Require().NoError(err)

		second := s.create(petID)
		s.Equal(adoption.StatusPending.String(), second.Status)
	})
}

func (s *AdoptionUseCaseTestSuite) TestSendConfirmation() {
	s.Run("starts the confirmation window and holds the pet", func() {
		petID := s.createPet(pet.StatusAvailable)
		created := s.create(petID)
		s.gateway.reset()

		updated, err := s.useCase.SendConfirmation(s.T().Context(), created.ID)
		s.Require().NoError(err)

		s.Equal(adoption.StatusConfirming.String(), updated.Status)
		s.Equal(pet.StatusPending.String(), s.petStatus(petID))
		s.Require().NotNil(updated.ConfirmationSentAt)
		s.Require().NotNil(updated.ConfirmationExpiresAt)
		s.True(updated.ConfirmationSentAt.Equal(s.clk.Now()))
		s.True(updated.ConfirmationExpiresAt.Equal(s.clk.Now().Add(adoption.ConfirmationWindow)))

		sent := s.gateway.all()
		s.Require().Len(sent, 1)
		s.Equal(updated.UserID, sent[0].UserID)
		s.Equal(notify.TypeAdoption, sent[0].Type)
	})

	s.Run("only pending adoptions can start confirming", func() {
		petID := s.createPet(pet.StatusAvailable)
		confirming := s.confirming(petID)

		_, err := s.useCase.SendConfirmation(s.T().Context(), confirming.ID)
		s.ErrorIs(err, errs.ErrInvalidTransition)
		s.Contains(err.Error(), "confirming")
	})
}

func (s *AdoptionUseCaseTestSuite) TestConfirmAdoption() {
	s.Run("confirms inside the window", func() {
		petID := s.createPet(pet.StatusAvailable)
		confirming := s.confirming(petID)

		s.clk.Add(3 * 24 * time.Hour)
		updated, err := s.useCase.ConfirmAdoption(s.T().Context(), confirming.ID)
		s.Require().NoError(err)

		s.Equal(adoption.StatusConfirmed.String(), updated.Status)
		s.Require().NotNil(updated.ApprovalDate)
		s.True(updated.ApprovalDate.Equal(s.clk.Now()))
	})

	s.Run("lapsed window cancels instead", func() {
		petID := s.createPet(pet.StatusAvailable)
		confirming := s.confirming(petID)
		s.gateway.reset()

		s.clk.Add(adoption.ConfirmationWindow + time.Hour)
		updated, err := s.useCase.ConfirmAdoption(s.T().Context(), confirming.ID)
		s.Require().NoError(err)

		s.Equal(adoption.StatusCancelled.String(), updated.Status)
		s.Equal(pet.StatusAvailable.String(), s.petStatus(petID))
		s.Require().NotNil(updated.Notes)
		s.Contains(*updated.Notes, adoption.ExpiredNote)

		sent := s.gateway.all()
		s.Require().Len(sent, 1)
		s.Equal("Adoption Request Expired", sent[0].Title)
	})

	s.Run("only confirming adoptions can confirm", func() {
		petID := s.createPet(pet.StatusAvailable)
		created := s.create(petID)

		_, err := s.useCase.ConfirmAdoption(s.T().Context(), created.ID)
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})
}

func (s *AdoptionUseCaseTestSuite) TestCancelAdoption() {
	s.Run("releases the pet and records the reason", func() {
		petID := s.createPet(pet.StatusAvailable)
		confirming := s.confirming(petID)

		reason := "adopter moved away"
		updated, err := s.useCase.CancelAdoption(s.T().Context(), confirming.ID, &reason)
		s.Require().NoError(err)

		s.Equal(adoption.StatusCancelled.String(), updated.Status)
		s.Equal(pet.StatusAvailable.String(), s.petStatus(petID))
		s.Require().NotNil(updated.Notes)
		s.Contains(*updated.Notes, reason)
	})

	s.Run("cancel on a terminal adoption is rejected", func() {
		petID := s.createPet(pet.StatusAvailable)
		created := s.create(petID)

		_, err := s.useCase.CancelAdoption(s.T().Context(), created.ID, nil)
		s.Require().NoError(err)

		_, err = s.useCase.CancelAdoption(s.T().Context(), created.ID, nil)
		s.ErrorIs(err, errs.ErrInvalidTransition)

		var transitionErr *errs.InvalidTransitionError
		s.ErrorAs(err, &transitionErr)
		s.Equal(adoption.StatusCancelled.String(), transitionErr.Current)
		s.Equal(adoption.StatusCancelled.String(), transitionErr.Requested)
	})
}

func (s *AdoptionUseCaseTestSuite) TestCompleteAdoption() {
	s.Run("marks the pet adopted", func() {
		petID := s.createPet(pet.StatusAvailable)
		confirming := s.confirming(petID)

		_, err := s.useCase.ConfirmAdoption(s.T().Context(), confirming.ID)
		s.Require().NoError(err)

		updated, err := s.useCase.CompleteAdoption(s.T().Context(), confirming.ID)
		s.Require().NoError(err)
		s.Equal(adoption.StatusCompleted.String(), updated.Status)
		s.Equal(pet.StatusAdopted.String(), s.petStatus(petID))
	})

	s.Run("only confirmed adoptions can complete", func() {
		petID := s.createPet(pet.StatusAvailable)
		created := s.create(petID)

		_, err := s.useCase.CompleteAdoption(s.T().Context(), created.ID)
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})
}

func (s *AdoptionUseCaseTestSuite) TestSweepExpired() {
	s.Run("cancels only lapsed confirmations", func() {
		lapsedA := s.confirming(s.createPet(pet.StatusAvailable))
		lapsedB := s.confirming(s.createPet(pet.StatusAvailable))

		s.clk.Add(adoption.ConfirmationWindow + time.Hour)
		freshPet := s.createPet(pet.StatusAvailable)
		fresh := s.confirming(freshPet)
		s.gateway.reset()

		result, err := s.useCase.SweepExpired(s.T().Context())
		s.Require().NoError(err)
		s.Equal(usecase.SweepResult{Attempted: 2, Cancelled: 2}, result)

		for _, id := range []uuid.UUID{lapsedA.ID, lapsedB.ID} {
			got, err := s.useCase.GetAdoption(s.T().Context(), id)
			s.Require().NoError(err)
			s.Equal(adoption.StatusCancelled.String(), got.Status)
			s.Require().NotNil(got.Notes)
			s.Contains(*got.Notes, adoption.ExpiredNote)
		}

		got, err := s.useCase.GetAdoption(s.T().Context(), fresh.ID)
		s.Require().NoError(err)
		s.Equal(adoption.StatusConfirming.String(), got.Status)
		s.Len(s.gateway.all(), 2)
	})

	s.Run("re-running the sweep is a no-op", func() {
		s.confirming(s.createPet(pet.StatusAvailable))
		s.clk.Add(adoption.ConfirmationWindow + time.Hour)

		first, err := s.useCase.SweepExpired(s.T().Context())
		s.Require().NoError(err)
		s.Equal(1, first.Cancelled)

		second, err := s.useCase.SweepExpired(s.T().Context())
		s.Require().NoError(err)
		s.Equal(usecase.SweepResult{}, second)
	})

	s.Run("manual confirm after the sweep converges on cancelled", func() {
		confirming := s.confirming(s.createPet(pet.StatusAvailable))
		s.clk.Add(adoption.ConfirmationWindow + time.Hour)

		_, err := s.useCase.SweepExpired(s.T().Context())
		s.Require().NoError(err)

		_, err = s.useCase.ConfirmAdoption(s.T().Context(), confirming.ID)
		s.ErrorIs(err, errs.ErrInvalidTransition)

		got, err := s.useCase.GetAdoption(s.T().Context(), confirming.ID)
		s.Require().NoError(err)
		s.Equal(adoption.StatusCancelled.String(), got.Status)
	})
}

// TestActiveAdoptionInvariant drives random transition sequences against one
// pet and checks that at most one active adoption exists after every step.
func (s *AdoptionUseCaseTestSuite) TestActiveAdoptionInvariant() {
	ctx := s.T().Context()
	petID := s.createPet(pet.StatusAvailable)
	rng := rand.New(rand.NewSource(42))

	var known []uuid.UUID
	for i := 0; i < 300; i++ {
		switch op := rng.Intn(5); op {
		case 0:
			created, err := s.useCase.CreateAdoption(ctx,
				reqdto.CreateAdoptionRequest{PetID: petID}, uuid.New())
			if err == nil {
				known = append(known, created.ID)
			}
		case 1, 2, 3, 4:
			if len(known) == 0 {
				continue
			}
			id := known[rng.Intn(len(known))]
			switch op {
			case 1:
				_, _ = s.useCase.SendConfirmation(ctx, id)
			case 2:
				_, _ = s.useCase.ConfirmAdoption(ctx, id)
			case 3:
				_, _ = s.useCase.CancelAdoption(ctx, id, nil)
			case 4:
				_, _ = s.useCase.CompleteAdoption(ctx, id)
			}
		}

		active, err := s.adoptRep.FindActiveByPet(ctx, petID)
		s.Require().NoError(err)
		s.Require().LessOrEqual(len(active), 1, "pet must never hold two active adoptions")
	}
}
