package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/metrics"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

type ReportService struct {
	reports store.ReportStore
	plans   store.PlanStore
	users   store.UserStore
	logger  *zap.Logger
}

func NewReportService(reports store.ReportStore, plans store.PlanStore, users store.UserStore, logger *zap.Logger) *ReportService {
	return &ReportService{reports: reports, plans: plans, users: users, logger: logger}
}

type ReportInput struct {
	PlanID                 int64
	ReportingUserID        int64
	AssessedByUserID       *int64
	Year                   int
	Quarter                int
	ActualValue            float64
	AnalystAssessmentScore *int
}

func (s *ReportService) Create(ctx context.Context, in ReportInput) (*model.QuarterlyReport, error) {
	if err := validateReportPeriod(in.Year, in.Quarter); err != nil {
		return nil, err
	}
	plan, reportingUser, assessedBy, err := s.resolveRefs(ctx, in)
	if err != nil {
		return nil, err
	}

	report := &model.QuarterlyReport{
		PlanID:                 plan.ID,
		ReportingUserID:        reportingUser.ID,
		AssessedByUserID:       assessedBy,
		Year:                   in.Year,
		Quarter:                in.Quarter,
		ActualValue:            in.ActualValue,
		AnalystAssessmentScore: in.AnalystAssessmentScore,
		CreatedAt:              time.Now(),
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, Internal("failed to create report", err)
	}

	metrics.EntityOps.WithLabelValues("report", "create").Inc()
	s.logger.Info("created report",
		zap.Int64("id", report.ID),
		zap.Int64("plan_id", report.PlanID),
		zap.Int("year", report.Year),
		zap.Int("quarter", report.Quarter))
	return report, nil
}

func (s *ReportService) GetByID(ctx context.Context, id int64) (*model.QuarterlyReport, error) {
	return resolve(ctx, s.reports.GetByID, "report", id)
}

func (s *ReportService) List(ctx context.Context) ([]model.QuarterlyReport, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, Internal("failed to list reports", err)
	}
	return reports, nil
}

func (s *ReportService) Update(ctx context.Context, id int64, in ReportInput) (*model.QuarterlyReport, error) {
	report, err := resolve(ctx, s.reports.GetByID, "report", id)
	if err != nil {
		return nil, err
	}
	if err := validateReportPeriod(in.Year, in.Quarter); err != nil {
		return nil, err
	}
	plan, reportingUser, assessedBy, err := s.resolveRefs(ctx, in)
	if err != nil {
		return nil, err
	}

	report.PlanID = plan.ID
	report.ReportingUserID = reportingUser.ID
	report.AssessedByUserID = assessedBy
	report.Year = in.Year
	report.Quarter = in.Quarter
	report.ActualValue = in.ActualValue
	report.AnalystAssessmentScore = in.AnalystAssessmentScore

	if err := s.reports.Update(ctx, report); err != nil {
		return nil, Internal("failed to update report", err)
	}

	metrics.EntityOps.WithLabelValues("report", "update").Inc()
	return report, nil
}

func (s *ReportService) Delete(ctx context.Context, id int64) error {
	if err := s.reports.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFoundf("report not found with id %d", id)
		}
		return Internal("failed to delete report", err)
	}
	metrics.EntityOps.WithLabelValues("report", "delete").Inc()
	return nil
}

// resolveRefs loads every referenced entity before anything is written,
// so a failed resolution leaves no partial state.
func (s *ReportService) resolveRefs(ctx context.Context, in ReportInput) (*model.Plan, *model.User, *int64, error) {
	plan, err := resolve(ctx, s.plans.GetByID, "plan", in.PlanID)
	if err != nil {
		return nil, nil, nil, err
	}
	reportingUser, err := resolve(ctx, s.users.GetByID, "reporting user", in.ReportingUserID)
	if err != nil {
		return nil, nil, nil, err
	}
	var assessedBy *int64
	if in.AssessedByUserID != nil {
		assessor, err := resolve(ctx, s.users.GetByID, "assessed user", *in.AssessedByUserID)
		if err != nil {
			return nil, nil, nil, err
		}
		assessedBy = &assessor.ID
	}
	return plan, reportingUser, assessedBy, nil
}

func validateReportPeriod(year, quarter int) error {
	if year < 2000 {
		return Invalidf("year must be 2000 or later")
	}
	if quarter < 1 || quarter > 4 {
		return Invalidf("quarter must be between 1 and 4")
	}
	return nil
}
