package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"contact-back/internal/model"
	"contact-back/internal/repository"
)

// NotifyPolicy decides where the admin notification sits relative to the
// insert transaction.
type NotifyPolicy string

const (
	// NotifyThenCommit sends the email inside the transaction and commits
	// only if it went out: an inquiry is visible in the store if and only
	// if the admin was notified.
	NotifyThenCommit NotifyPolicy = "notify-then-commit"

	// CommitThenNotify persists first and treats the email as best-effort;
	// a failed send is logged, never surfaced to the visitor.
	CommitThenNotify NotifyPolicy = "commit-then-notify"
)

type InquiryRepository interface {
	Begin(ctx context.Context) (pgx.Tx, error)

	InsertInquiry(ctx context.Context, ext repository.RepoExtension, inquiry *model.Inquiry) error
	SelectInquiries(ctx context.Context, ext repository.RepoExtension) ([]model.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, ext repository.RepoExtension, id int64, status string) (*model.Inquiry, error)
}

type InquiryNotifier interface {
	NotifyNewInquiry(name, email, message string) error
}

type InquiryService struct {
	log         *zap.Logger
	inquiryRepo InquiryRepository
	notifier    InquiryNotifier
	policy      NotifyPolicy
}

func NewInquiryService(log *zap.Logger, inquiryRepo InquiryRepository, notifier InquiryNotifier, policy NotifyPolicy) *InquiryService {
	if policy == "" {
		policy = NotifyThenCommit
	}

	return &InquiryService{
		log:         log,
		inquiryRepo: inquiryRepo,
		notifier:    notifier,
		policy:      policy,
	}
}

func (s *InquiryService) Submit(ctx context.Context, req *model.InquiryCreateRequest) (*model.Inquiry, error) {
	if err := ValidateInquiry(req.Name, req.Email, req.Message); err != nil {
		return nil, err
	}

	inquiry := &model.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if s.policy == CommitThenNotify {
		if err := s.inquiryRepo.InsertInquiry(ctx, nil, inquiry); err != nil {
			return nil, fmt.Errorf("failed to insert inquiry: %w", err)
		}

		if err := s.notifier.NotifyNewInquiry(inquiry.Name, inquiry.Email, inquiry.Message); err != nil {
			s.log.Error("inquiry stored but admin notification failed",
				zap.Int64("inquiry_id", inquiry.ID),
				zap.Error(err),
			)
		}

		return inquiry, nil
	}

	tx, err := s.inquiryRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := s.inquiryRepo.InsertInquiry(ctx, tx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to insert inquiry: %w", err)
	}

	// The row stays invisible until the notification is out; rollback on
	// a failed send leaves no half-recorded inquiry behind.
	if err := s.notifier.NotifyNewInquiry(inquiry.Name, inquiry.Email, inquiry.Message); err != nil {
		return nil, fmt.Errorf("failed to notify admin: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return inquiry, nil
}

func (s *InquiryService) List(ctx context.Context) ([]model.Inquiry, error) {
	inquiries, err := s.inquiryRepo.SelectInquiries(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to select inquiries: %w", err)
	}

	return inquiries, nil
}

func (s *InquiryService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Inquiry, error) {
	inquiry, err := s.inquiryRepo.UpdateInquiryStatus(ctx, nil, id, status)
	if err != nil {
		return nil, err
	}

	return inquiry, nil
}
