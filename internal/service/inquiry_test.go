package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"contact-back/internal/apperrors"
	"contact-back/internal/model"
	"contact-back/internal/repository"
)

// ---------------------------------------------------------------------------
// Fake transaction
// ---------------------------------------------------------------------------

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return tx, nil }

func (tx *fakeTx) Commit(ctx context.Context) error {
	if tx.committed || tx.rolledBack {
		return pgx.ErrTxClosed
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	if tx.committed || tx.rolledBack {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

func (tx *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (tx *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (tx *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (tx *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (tx *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (tx *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (tx *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (tx *fakeTx) Conn() *pgx.Conn { return nil }

// ---------------------------------------------------------------------------
// Mock repository and notifier
// ---------------------------------------------------------------------------

type mockInquiryRepo struct {
	tx *fakeTx

	insertFunc func(ctx context.Context, ext repository.RepoExtension, inquiry *model.Inquiry) error
	selectFunc func(ctx context.Context, ext repository.RepoExtension) ([]model.Inquiry, error)
	updateFunc func(ctx context.Context, ext repository.RepoExtension, id int64, status string) (*model.Inquiry, error)

	insertCalls int
}

func (m *mockInquiryRepo) Begin(ctx context.Context) (pgx.Tx, error) {
	if m.tx == nil {
		m.tx = &fakeTx{}
	}
	return m.tx, nil
}

func (m *mockInquiryRepo) InsertInquiry(ctx context.Context, ext repository.RepoExtension, inquiry *model.Inquiry) error {
	m.insertCalls++
	if m.insertFunc != nil {
		return m.insertFunc(ctx, ext, inquiry)
	}
	inquiry.ID = 1
	inquiry.Status = model.StatusUnread
	return nil
}

func (m *mockInquiryRepo) SelectInquiries(ctx context.Context, ext repository.RepoExtension) ([]model.Inquiry, error) {
	if m.selectFunc != nil {
		return m.selectFunc(ctx, ext)
	}
	return nil, nil
}

func (m *mockInquiryRepo) UpdateInquiryStatus(ctx context.Context, ext repository.RepoExtension, id int64, status string) (*model.Inquiry, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, ext, id, status)
	}
	return nil, apperrors.ErrInquiryNotFound
}

type mockNotifier struct {
	notifyFunc func(name, email, message string) error
	calls      int
}

func (m *mockNotifier) NotifyNewInquiry(name, email, message string) error {
	m.calls++
	if m.notifyFunc != nil {
		return m.notifyFunc(name, email, message)
	}
	return nil
}

func validRequest() *model.InquiryCreateRequest {
	return &model.InquiryCreateRequest{
		Name:    "A",
		Email:   "a@b.com",
		Message: "hi",
	}
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestInquiryService_Submit_CommitsAfterNotify(t *testing.T) {
	repo := &mockInquiryRepo{}
	notifier := &mockNotifier{}
	svc := NewInquiryService(zap.NewNop(), repo, notifier, NotifyThenCommit)

	inquiry, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if inquiry.ID != 1 {
		t.Errorf("expected persisted id 1, got %d", inquiry.ID)
	}
	if notifier.calls != 1 {
		t.Errorf("expected 1 notification, got %d", notifier.calls)
	}
	if !repo.tx.committed {
		t.Error("expected transaction to be committed")
	}
	if repo.tx.rolledBack {
		t.Error("expected no rollback on success")
	}
}

func TestInquiryService_Submit_InsertRunsInsideTransaction(t *testing.T) {
	repo := &mockInquiryRepo{}
	repo.insertFunc = func(ctx context.Context, ext repository.RepoExtension, inquiry *model.Inquiry) error {
		if ext == nil {
			t.Error("expected insert to receive the open transaction")
		}
		if _, ok := ext.(*fakeTx); !ok {
			t.Errorf("expected insert to run on the transaction, got %T", ext)
		}
		inquiry.ID = 1
		return nil
	}

	svc := NewInquiryService(zap.NewNop(), repo, &mockNotifier{}, NotifyThenCommit)

	if _, err := svc.Submit(context.Background(), validRequest()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
}

func TestInquiryService_Submit_RollsBackWhenNotifyFails(t *testing.T) {
	repo := &mockInquiryRepo{}
	notifier := &mockNotifier{
		notifyFunc: func(name, email, message string) error {
			return errors.New("smtp down")
		},
	}
	svc := NewInquiryService(zap.NewNop(), repo, notifier, NotifyThenCommit)

	_, err := svc.Submit(context.Background(), validRequest())
	if err == nil {
		t.Fatal("expected Submit to fail when notification fails")
	}

	if repo.insertCalls != 1 {
		t.Errorf("expected 1 insert attempt, got %d", repo.insertCalls)
	}
	if repo.tx.committed {
		t.Error("expected no commit when notification fails")
	}
	if !repo.tx.rolledBack {
		t.Error("expected transaction to be rolled back")
	}
}

func TestInquiryService_Submit_ValidationRejectsBeforeAnySideEffect(t *testing.T) {
	repo := &mockInquiryRepo{}
	notifier := &mockNotifier{}
	svc := NewInquiryService(zap.NewNop(), repo, notifier, NotifyThenCommit)

	cases := []*model.InquiryCreateRequest{
		{Name: "", Email: "a@b.com", Message: "hi"},
		{Name: "A", Email: "bad", Message: "hi"},
		{Name: "A", Email: "a@b.com", Message: ""},
	}

	for _, req := range cases {
		if _, err := svc.Submit(context.Background(), req); err == nil {
			t.Errorf("expected validation error for %+v", req)
		}
	}

	if repo.insertCalls != 0 {
		t.Errorf("expected no inserts, got %d", repo.insertCalls)
	}
	if notifier.calls != 0 {
		t.Errorf("expected no notifications, got %d", notifier.calls)
	}
	if repo.tx != nil {
		t.Error("expected no transaction to be opened")
	}
}

func TestInquiryService_Submit_CommitThenNotifyKeepsRowOnNotifyFailure(t *testing.T) {
	repo := &mockInquiryRepo{}
	repo.insertFunc = func(ctx context.Context, ext repository.RepoExtension, inquiry *model.Inquiry) error {
		if ext != nil {
			t.Errorf("expected insert on the pool (nil ext), got %T", ext)
		}
		inquiry.ID = 7
		return nil
	}
	notifier := &mockNotifier{
		notifyFunc: func(name, email, message string) error {
			return errors.New("smtp down")
		},
	}
	svc := NewInquiryService(zap.NewNop(), repo, notifier, CommitThenNotify)

	inquiry, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("expected best-effort notify to swallow the error, got %v", err)
	}
	if inquiry.ID != 7 {
		t.Errorf("expected persisted id 7, got %d", inquiry.ID)
	}
	if notifier.calls != 1 {
		t.Errorf("expected 1 notification attempt, got %d", notifier.calls)
	}
}

func TestInquiryService_Submit_InsertFailurePropagates(t *testing.T) {
	repo := &mockInquiryRepo{}
	repo.insertFunc = func(ctx context.Context, ext repository.RepoExtension, inquiry *model.Inquiry) error {
		return errors.New("boom")
	}
	notifier := &mockNotifier{}
	svc := NewInquiryService(zap.NewNop(), repo, notifier, NotifyThenCommit)

	if _, err := svc.Submit(context.Background(), validRequest()); err == nil {
		t.Fatal("expected Submit to fail")
	}

	if notifier.calls != 0 {
		t.Errorf("expected no notification after failed insert, got %d", notifier.calls)
	}
	if repo.tx.committed {
		t.Error("expected no commit after failed insert")
	}
}

// ---------------------------------------------------------------------------
// List / UpdateStatus
// ---------------------------------------------------------------------------

func TestInquiryService_List_PassesThrough(t *testing.T) {
	want := []model.Inquiry{{ID: 2}, {ID: 1}}

	repo := &mockInquiryRepo{
		selectFunc: func(ctx context.Context, ext repository.RepoExtension) ([]model.Inquiry, error) {
			return want, nil
		},
	}
	svc := NewInquiryService(zap.NewNop(), repo, &mockNotifier{}, NotifyThenCommit)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Errorf("expected order preserved, got %+v", got)
	}
}

func TestInquiryService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewInquiryService(zap.NewNop(), &mockInquiryRepo{}, &mockNotifier{}, NotifyThenCommit)

	_, err := svc.UpdateStatus(context.Background(), 99, "resolved")
	if !errors.Is(err, apperrors.ErrInquiryNotFound) {
		t.Errorf("expected ErrInquiryNotFound, got %v", err)
	}
}

func TestInquiryService_UpdateStatus_ReturnsUpdatedRow(t *testing.T) {
	repo := &mockInquiryRepo{
		updateFunc: func(ctx context.Context, ext repository.RepoExtension, id int64, status string) (*model.Inquiry, error) {
			return &model.Inquiry{ID: id, Status: status}, nil
		},
	}
	svc := NewInquiryService(zap.NewNop(), repo, &mockNotifier{}, NotifyThenCommit)

	inquiry, err := svc.UpdateStatus(context.Background(), 3, "resolved")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if inquiry.ID != 3 || inquiry.Status != "resolved" {
		t.Errorf("unexpected result: %+v", inquiry)
	}
}
