package repository

import (
	"context"

	"pawhaven/internal/domain/report"
	"pawhaven/internal/infra/store"
	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReportRepository struct {
	store store.EntityStore
}

func NewReportRepository(s store.EntityStore) *ReportRepository {
	return &ReportRepository{store: s}
}

func (r *ReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Report, error) {
	it, err := r.store.Get(ctx, store.CollectionReports, id)
	if err != nil {
		return nil, err
	}
	return toReport(it), nil
}

func (r *ReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status report.Status) (*readmodel.Report, error) {
	it, err := r.store.Update(ctx, store.CollectionReports, id, map[string]any{
		"status": status.String(),
	})
	if err != nil {
		return nil, err
	}
	return toReport(it), nil
}
