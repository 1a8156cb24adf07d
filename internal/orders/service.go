package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrCompanyRequired rejects queries without a company scope.
	ErrCompanyRequired = errors.New("company id is required")
	// ErrValidation rejects ingestion requests with missing or bad fields.
	ErrValidation = errors.New("invalid order attempt")
)

// Service enforces the ingestion and query contracts over the store.
type Service struct {
	repo     Repository
	logger   *slog.Logger
	validate *validator.Validate
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		logger:   logger,
		validate: validator.New(),
	}
}

// List returns every attempt for the company, optionally narrowed by origin
// and status. An empty result is an empty slice, never an error.
func (s *Service) List(ctx context.Context, req ListOrdersRequest) ([]OrderAttempt, error) {
	if req.CompanyID <= 0 {
		return nil, ErrCompanyRequired
	}

	records, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list order attempts: %w", err)
	}
	if records == nil {
		records = []OrderAttempt{}
	}
	return records, nil
}

// Get returns one attempt, scoped to the company. A record belonging to
// another company is reported as not found.
func (s *Service) Get(ctx context.Context, companyID, id int64) (*OrderAttempt, error) {
	if companyID <= 0 {
		return nil, ErrCompanyRequired
	}
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.CompanyID != companyID {
		return nil, ErrNotFound
	}
	return rec, nil
}

// Register appends a new attempt record and returns its id. Each call
// creates a new row; no idempotency is provided, by contract. The endpoint
// records the outcome of a submission performed elsewhere and never talks
// to the ERP itself.
func (s *Service) Register(ctx context.Context, req RegisterOrderRequest) (int64, error) {
	if err := s.validate.Struct(req); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	attempts := req.Attempts
	if attempts < 1 {
		attempts = 1
	}

	rec := OrderAttempt{
		CompanyID:   req.CompanyID,
		Origin:      req.Origin,
		LeadCode:    req.LeadCode,
		Payload:     req.Payload,
		Status:      req.Status,
		ERPOrderRef: req.ERPOrderRef,
		Error:       req.Error,
		Attempts:    attempts,
		UserID:      req.UserID,
		UserName:    req.UserName,
	}

	id, err := s.repo.Create(ctx, rec)
	if err != nil {
		return 0, fmt.Errorf("register order attempt: %w", err)
	}

	s.logger.Info("order attempt recorded",
		slog.Int64("id", id),
		slog.Int64("company_id", req.CompanyID),
		slog.String("origin", string(req.Origin)),
		slog.String("status", string(req.Status)),
	)
	return id, nil
}
