//go:build unit

package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pawhaven/internal/infra/repository"
	"pawhaven/internal/infra/store/memory"
	"pawhaven/internal/pkg/clock"
	"pawhaven/internal/usecase"
	"pawhaven/internal/usecase/command"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ActivityUseCaseTestSuite struct {
	suite.Suite
	clk     *clock.MockClock
	log     *repository.ActivityLogRepository
	useCase usecase.ActivityUseCase
}

func TestActivityUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ActivityUseCaseTestSuite))
}

func (s *ActivityUseCaseTestSuite) SetupTest() {
	s.clk = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	st := memory.New(s.clk)
	s.log = repository.NewActivityLogRepository(st)
	s.useCase = usecase.NewActivityUseCase(s.log)
}

func (s *ActivityUseCaseTestSuite) appendEntries(n int) {
	ctx := context.Background()
	for i := range n {
		_, err := s.log.Append(ctx, command.NewActivityEntry{
			Action:      "adoption.created",
			ActorID:     uuid.New(),
			TargetType:  "adoption",
			TargetID:    uuid.New(),
			Description: fmt.Sprintf("entry %d", i),
		})
		s.Require().NoError(err)
		s.clk.Add(time.Minute)
	}
}

func (s *ActivityUseCaseTestSuite) TestListRecentActivity() {
	ctx := context.Background()

	s.Run("returns newest entries first", func() {
		s.appendEntries(3)

		entries, err := s.useCase.ListRecentActivity(ctx, usecase.PlatformRoleAdmin, 0)
		s.Require().NoError(err)
		s.Require().Len(entries, 3)
		s.Equal("entry 2", entries[0].Description)
		s.Equal("entry 0", entries[2].Description)
	})

	s.Run("limit caps the result", func() {
		entries, err := s.useCase.ListRecentActivity(ctx, usecase.PlatformRoleStaff, 2)
		s.Require().NoError(err)
		s.Len(entries, 2)
	})

	s.Run("member role is denied", func() {
		_, err := s.useCase.ListRecentActivity(ctx, "member", 0)
		s.Require().ErrorIs(err, usecase.ErrActivityAccessDenied)
	})

	s.Run("empty role is denied", func() {
		_, err := s.useCase.ListRecentActivity(ctx, "", 0)
		s.Require().ErrorIs(err, usecase.ErrActivityAccessDenied)
	})
}
