//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"pawhaven/internal/domain/report"
	"pawhaven/internal/domain/rescue"
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

type RescueUseCaseTestSuite struct {
	suite.Suite
	clk     *clock.MockClock
	store   *memory.Store
	reports *repository.ReportRepository
	gateway *recordingGateway
	useCase usecase.RescueUseCase
}

func TestRescueUseCaseSuite(t *testing.T) {
	suite.Run(t, new(RescueUseCaseTestSuite))
}

func (s *RescueUseCaseTestSuite) SetupTest() {
	s.clk = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.store = memory.New(s.clk)
	s.reports = repository.NewReportRepository(s.store)
	s.gateway = &recordingGateway{}
	s.useCase = usecase.NewRescueUseCase(
		repository.NewRescueRepository(s.store),
		s.reports,
		repository.NewActivityLogRepository(s.store),
		s.gateway,
	)
}

func (s *RescueUseCaseTestSuite) createReport(status report.Status) *readmodel.Report {
	reporterID := uuid.New()
	it, err := s.store.Create(s.T().Context(), store.CollectionReports, map[string]any{
		"title":       "Injured cat near the river",
		"species":     "cat",
		"location":    "Riverside Park",
		"status":      status,
		"reporter_id": reporterID,
	})
	require.NoError(s.T(), err)

	reportRM, err := s.reports.FindByID(s.T().Context(), it.ID())
	require.NoError(s.T(), err)
	return reportRM
}

func (s *RescueUseCaseTestSuite) createRescue(required int) *readmodel.Rescue {
	created, err := s.useCase.CreateRescue(s.T().Context(), reqdto.CreateRescueRequest{
		Title:                "River cleanup rescue",
		RequiredParticipants: required,
	})
	require.NoError(s.T(), err)
	return created
}

func (s *RescueUseCaseTestSuite) addParticipant(rescueID uuid.UUID) uuid.UUID {
	userID := uuid.New()
	_, err := s.useCase.AddParticipant(s.T().Context(), rescueID,
		reqdto.AddParticipantRequest{UserID: userID})
	require.NoError(s.T(), err)
	return userID
}

func (s *RescueUseCaseTestSuite) addReport(rescueID uuid.UUID) *readmodel.Report {
	reportRM := s.createReport(report.StatusPending)
	_, err := s.useCase.AddReport(s.T().Context(), rescueID,
		reqdto.AddReportRequest{ReportID: reportRM.ID})
	require.NoError(s.T(), err)
	return reportRM
}

// running returns an in_progress campaign with one participant and one report.
func (s *RescueUseCaseTestSuite) running(required int) (*readmodel.Rescue, *readmodel.Report, uuid.UUID) {
	created := s.createRescue(required)
	userID := s.addParticipant(created.ID)
	reportRM := s.addReport(created.ID)

	started, err := s.useCase.StartRescue(s.T().Context(), created.ID)
	require.NoError(s.T(), err)
	return started, reportRM, userID
}

func (s *RescueUseCaseTestSuite) reportStatus(id uuid.UUID) string {
	reportRM, err := s.reports.FindByID(s.T().Context(), id)
	require.NoError(s.T(), err)
	return reportRM.Status
}

func (s *RescueUseCaseTestSuite) TestCreateRescue() {
	s.Run("creates a planned campaign", func() {
		created := s.createRescue(3)
		s.Equal(rescue.StatusPlanned.String(), created.Status)
		s.Equal(3, created.RequiredParticipants)
		s.Empty(created.Participants)
		s.Empty(created.Reports)
	})

	s.Run("rejects zero required participants", func() {
		_, err := s.useCase.CreateRescue(s.T().Context(), reqdto.CreateRescueRequest{
			Title:                "Empty crew",
			RequiredParticipants: 0,
		})
		s.ErrorIs(err, usecase.ErrInvalidRequiredParticipants)
	})
}

func (s *RescueUseCaseTestSuite) TestAddParticipant() {
	s.Run("joins as member by default", func() {
		created := s.createRescue(2)
		userID := uuid.New()

		participant, err := s.useCase.AddParticipant(s.T().Context(), created.ID,
			reqdto.AddParticipantRequest{UserID: userID})
		s.Require().NoError(err)
		s.Equal(rescue.RoleMember.String(), participant.Role)
		s.Equal(userID, participant.UserID)
	})

	s.Run("joining an in-progress campaign is allowed", func() {
		started, _, _ := s.running(2)

		_, err := s.useCase.AddParticipant(s.T().Context(), started.ID,
			reqdto.AddParticipantRequest{UserID: uuid.New()})
		s.NoError(err)
	})

	s.Run("capacity is enforced", func() {
		created := s.createRescue(1)
		s.addParticipant(created.ID)

		_, err := s.useCase.AddParticipant(s.T().Context(), created.ID,
			reqdto.AddParticipantRequest{UserID: uuid.New()})
		s.ErrorIs(err, errs.ErrCapacityExceeded)
		s.Contains(err.Error(), "maximum required participants (1) already reached")
	})

	s.Run("duplicate membership is rejected", func() {
		created := s.createRescue(3)
		userID := s.addParticipant(created.ID)

		_, err := s.useCase.AddParticipant(s.T().Context(), created.ID,
			reqdto.AddParticipantRequest{UserID: userID})
		s.ErrorIs(err, usecase.ErrAlreadyParticipant)
	})

	s.Run("closed campaigns accept nobody", func() {
		started, reportRM, _ := s.running(2)
		_, err := s.useCase.UpdateReportProgress(s.T().Context(), started.ID, reportRM.ID,
			reqdto.UpdateReportProgressRequest{Status: rescue.LinkSuccess.String()})
		s.Require().NoError(err)
		_, err = s.useCase.CompleteRescue(s.T().Context(), started.ID)
		s.Require().NoError(err)

		_, err = s.useCase.AddParticipant(s.T().Context(), started.ID,
			reqdto.AddParticipantRequest{UserID: uuid.New()})
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})
}

func (s *RescueUseCaseTestSuite) TestRemoveParticipant() {
	created := s.createRescue(2)
	userID := s.addParticipant(created.ID)

	s.Require().NoError(s.useCase.RemoveParticipant(s.T().Context(), created.ID, userID))

	err := s.useCase.RemoveParticipant(s.T().Context(), created.ID, userID)
	s.ErrorIs(err, usecase.ErrParticipantNotFound)
}

func (s *RescueUseCaseTestSuite) TestAddReport() {
	s.Run("links the report and assigns it", func() {
		created := s.createRescue(2)
		reportRM := s.createReport(report.StatusPending)

		link, err := s.useCase.AddReport(s.T().Context(), created.ID,
			reqdto.AddReportRequest{ReportID: reportRM.ID})
		s.Require().NoError(err)
		s.Equal(rescue.LinkInProgress.String(), link.Status)
		s.Equal(report.StatusAssigned.String(), s.reportStatus(reportRM.ID))
	})

	s.Run("only planned campaigns take reports", func() {
		started, _, _ := s.running(2)
		reportRM := s.createReport(report.StatusPending)

		_, err := s.useCase.AddReport(s.T().Context(), started.ID,
			reqdto.AddReportRequest{ReportID: reportRM.ID})
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})

	s.Run("assigned reports cannot be linked twice", func() {
		created := s.createRescue(2)
		reportRM := s.addReport(created.ID)

		other := s.createRescue(2)
		_, err := s.useCase.AddReport(s.T().Context(), other.ID,
			reqdto.AddReportRequest{ReportID: reportRM.ID})
		s.ErrorIs(err, usecase.ErrReportNotPending)
	})
}

func (s *RescueUseCaseTestSuite) TestStartRescue() {
	s.Run("requires a participant", func() {
		created := s.createRescue(2)
		s.addReport(created.ID)

		_, err := s.useCase.StartRescue(s.T().Context(), created.ID)
		s.ErrorIs(err, errs.ErrInvalidTransition)
		s.Contains(err.Error(), "no participants")
	})

	s.Run("requires a linked report", func() {
		created := s.createRescue(2)
		s.addParticipant(created.ID)

		_, err := s.useCase.StartRescue(s.T().Context(), created.ID)
		s.ErrorIs(err, errs.ErrInvalidTransition)
		s.Contains(err.Error(), "no linked reports")
	})

	s.Run("notifies every participant", func() {
		created := s.createRescue(2)
		first := s.addParticipant(created.ID)
		second := s.addParticipant(created.ID)
		s.addReport(created.ID)
		s.gateway.reset()

		started, err := s.useCase.StartRescue(s.T().Context(), created.ID)
		s.Require().NoError(err)
		s.Equal(rescue.StatusInProgress.String(), started.Status)

		sent := s.gateway.all()
		s.Require().Len(sent, 2)
		recipients := map[uuid.UUID]bool{sent[0].UserID: true, sent[1].UserID: true}
		s.True(recipients[first])
		s.True(recipients[second])
	})
}

func (s *RescueUseCaseTestSuite) TestUpdateReportProgress() {
	s.Run("records progress with a note", func() {
		started, reportRM, _ := s.running(2)
		note := "animal secured"

		link, err := s.useCase.UpdateReportProgress(s.T().Context(), started.ID, reportRM.ID,
			reqdto.UpdateReportProgressRequest{Status: rescue.LinkSuccess.String(), Note: &note})
		s.Require().NoError(err)
		s.Equal(rescue.LinkSuccess.String(), link.Status)
		s.Require().NotNil(link.Note)
		s.Equal(note, *link.Note)
	})

	s.Run("only running campaigns track progress", func() {
		created := s.createRescue(2)
		reportRM := s.addReport(created.ID)

		_, err := s.useCase.UpdateReportProgress(s.T().Context(), created.ID, reportRM.ID,
			reqdto.UpdateReportProgressRequest{Status: rescue.LinkSuccess.String()})
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})
}

func (s *RescueUseCaseTestSuite) TestCompleteRescue() {
	s.Run("refuses while a report is still in progress", func() {
		started, _, _ := s.running(2)

		_, err := s.useCase.CompleteRescue(s.T().Context(), started.ID)
		s.ErrorIs(err, errs.ErrInvalidTransition)
		s.Contains(err.Error(), "1 report(s) still in progress")
	})

	s.Run("resolves successes and returns cancellations to the pool", func() {
		created := s.createRescue(2)
		participant := s.addParticipant(created.ID)
		succeeded := s.addReport(created.ID)
		abandoned := s.addReport(created.ID)

		_, err := s.useCase.StartRescue(s.T().Context(), created.ID)
		s.Require().NoError(err)

		_, err = s.useCase.UpdateReportProgress(s.T().Context(), created.ID, succeeded.ID,
			reqdto.UpdateReportProgressRequest{Status: rescue.LinkSuccess.String()})
		s.Require().NoError(err)
		_, err = s.useCase.UpdateReportProgress(s.T().Context(), created.ID, abandoned.ID,
			reqdto.UpdateReportProgressRequest{Status: rescue.LinkCancelled.String()})
		s.Require().NoError(err)
		s.gateway.reset()

		completed, err := s.useCase.CompleteRescue(s.T().Context(), created.ID)
		s.Require().NoError(err)
		s.Equal(rescue.StatusCompleted.String(), completed.Status)
		s.Equal(report.StatusResolved.String(), s.reportStatus(succeeded.ID))
		s.Equal(report.StatusPending.String(), s.reportStatus(abandoned.ID))

		// One per reporter plus one per participant.
		sent := s.gateway.all()
		s.Require().Len(sent, 3)
		byUser := map[uuid.UUID]notify.Notification{}
		for _, n := range sent {
			byUser[n.UserID] = n
		}
		s.Equal(notify.TypeReport, byUser[succeeded.ReporterID].Type)
		s.Equal(notify.TypeReport, byUser[abandoned.ReporterID].Type)
		s.Equal(notify.TypeRescue, byUser[participant].Type)
	})
}

func (s *RescueUseCaseTestSuite) TestCancelRescue() {
	s.Run("returns reports to the pool and records the reason", func() {
		created := s.createRescue(2)
		s.addParticipant(created.ID)
		reportRM := s.addReport(created.ID)
		reason := "weather made the site unreachable"
		s.gateway.reset()

		cancelled, err := s.useCase.CancelRescue(s.T().Context(), created.ID,
			reqdto.CancelRescueRequest{Reason: &reason})
		s.Require().NoError(err)
		s.Equal(rescue.StatusCancelled.String(), cancelled.Status)
		s.Equal(report.StatusPending.String(), s.reportStatus(reportRM.ID))

		full, err := s.useCase.GetRescue(s.T().Context(), created.ID)
		s.Require().NoError(err)
		s.Require().Len(full.Reports, 1)
		s.Equal(rescue.LinkCancelled.String(), full.Reports[0].Status)
		s.Require().NotNil(full.Reports[0].Note)
		s.Equal(reason, *full.Reports[0].Note)

		// Participant and reporter both hear about it.
		s.Len(s.gateway.all(), 2)
	})

	s.Run("terminal campaigns cannot be cancelled", func() {
		created := s.createRescue(2)
		_, err := s.useCase.CancelRescue(s.T().Context(), created.ID, reqdto.CancelRescueRequest{})
		s.Require().NoError(err)

		_, err = s.useCase.CancelRescue(s.T().Context(), created.ID, reqdto.CancelRescueRequest{})
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})
}

func (s *RescueUseCaseTestSuite) TestClaimReport() {
	s.Run("spins up a running one-person campaign", func() {
		reportRM := s.createReport(report.StatusPending)
		userID := uuid.New()
		s.gateway.reset()

		claimed, err := s.useCase.ClaimReport(s.T().Context(), reportRM.ID, userID)
		s.Require().NoError(err)

		s.Equal(rescue.StatusInProgress.String(), claimed.Status)
		s.Equal(1, claimed.RequiredParticipants)
		s.Require().Len(claimed.Participants, 1)
		s.Equal(userID, claimed.Participants[0].UserID)
		s.Equal(rescue.RoleLeader.String(), claimed.Participants[0].Role)
		s.Require().Len(claimed.Reports, 1)
		s.Equal(rescue.LinkInProgress.String(), claimed.Reports[0].Status)
		s.Equal(report.StatusAssigned.String(), s.reportStatus(reportRM.ID))

		sent := s.gateway.all()
		s.Require().Len(sent, 1)
		s.Equal(userID, sent[0].UserID)
	})

	s.Run("claims only pending reports", func() {
		reportRM := s.createReport(report.StatusPending)
		_, err := s.useCase.ClaimReport(s.T().Context(), reportRM.ID, uuid.New())
		s.Require().NoError(err)

		_, err = s.useCase.ClaimReport(s.T().Context(), reportRM.ID, uuid.New())
		s.ErrorIs(err, usecase.ErrReportNotPending)
		s.ErrorIs(err, errs.ErrConflict)
	})
}
