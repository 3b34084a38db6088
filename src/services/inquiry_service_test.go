package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories/mock"
	"github.com/khabaroff/sitecraft-api/src/validation"
)

func validInquiry(email string) validation.CreateInquiry {
	return validation.CreateInquiry{
		Name:       "Jane Doe",
		Email:      email,
		Message:    "We would like a new website for our bakery.",
		SourcePage: models.SourcePagePricing,
	}
}

func TestInquiryService_CreateNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewInquiryService(mock.NewInquiryRepository(), notifier, nil, false)

	inquiry, err := svc.Create(context.Background(), validInquiry("jane@example.com"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	svc.Wait()

	if inquiry.Status != models.InquiryStatusNew {
		t.Errorf("expected status new, got %q", inquiry.Status)
	}
	if inquiry.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	notified, confirmed := notifier.counts()
	if notified != 1 || confirmed != 0 {
		t.Errorf("expected 1 notification and no confirmation, got %d/%d", notified, confirmed)
	}
}

func TestInquiryService_CreateSendsConfirmationWhenEnabled(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewInquiryService(mock.NewInquiryRepository(), notifier, nil, true)

	if _, err := svc.Create(context.Background(), validInquiry("jane@example.com")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	svc.Wait()

	if _, confirmed := notifier.counts(); confirmed != 1 {
		t.Errorf("expected confirmation email, got %d", confirmed)
	}
}

func TestInquiryService_NotificationFailureIsAbsorbed(t *testing.T) {
	notifier := &fakeNotifier{notifyErr: errSMTPDown, confirmations: errSMTPDown}
	repo := mock.NewInquiryRepository()
	svc := NewInquiryService(repo, notifier, nil, true)

	inquiry, err := svc.Create(context.Background(), validInquiry("jane@example.com"))
	if err != nil {
		t.Fatalf("expected create to succeed despite email failure, got %v", err)
	}
	svc.Wait()

	if _, err := repo.GetByID(context.Background(), inquiry.ID); err != nil {
		t.Errorf("expected inquiry to be persisted, got %v", err)
	}
}

func TestInquiryService_CreateWithoutNotifier(t *testing.T) {
	svc := NewInquiryService(mock.NewInquiryRepository(), nil, nil, true)
	if _, err := svc.Create(context.Background(), validInquiry("jane@example.com")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	svc.Wait()
}

func TestInquiryService_CreateStorageFailure(t *testing.T) {
	notifier := &fakeNotifier{}
	repo := mock.NewInquiryRepository()
	repo.CreateFunc = func(context.Context, *models.Inquiry) error { return errors.New("disk full") }
	svc := NewInquiryService(repo, notifier, nil, false)

	if _, err := svc.Create(context.Background(), validInquiry("jane@example.com")); err == nil {
		t.Fatal("expected storage error")
	}
	svc.Wait()
	if notified, _ := notifier.counts(); notified != 0 {
		t.Error("no notification may be sent for a failed insert")
	}
}

func TestInquiryService_ListPagination(t *testing.T) {
	svc := NewInquiryService(mock.NewInquiryRepository(), nil, nil, false)
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		if _, err := svc.Create(ctx, validInquiry("lead@example.com")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	items, page, err := svc.List(ctx, models.InquiryFilter{Page: 3, Limit: 10, SortBy: models.SortByCreatedAt, SortOrder: "desc"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 5 {
		t.Errorf("expected 5 items on the last page, got %d", len(items))
	}
	if page.Total != 25 || page.Pages != 3 || page.Page != 3 || page.Limit != 10 {
		t.Errorf("unexpected pagination %+v", page)
	}

	items, page, _ = svc.List(ctx, models.InquiryFilter{Status: models.InquiryStatusClosed, Page: 1, Limit: 10})
	if len(items) != 0 || page.Total != 0 || page.Pages != 0 {
		t.Errorf("expected empty result, got %d items %+v", len(items), page)
	}
	if items == nil {
		t.Error("expected empty slice, not nil")
	}
}

func TestInquiryService_UpdatePartial(t *testing.T) {
	svc := NewInquiryService(mock.NewInquiryRepository(), nil, nil, false)
	ctx := context.Background()
	created, _ := svc.Create(ctx, validInquiry("jane@example.com"))

	notes := "Called back on Monday"
	updated, err := svc.Update(ctx, created.ID, validation.UpdateInquiry{AdminNotes: &notes})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != models.InquiryStatusNew || updated.AdminNotes != notes {
		t.Errorf("expected only notes to change, got %+v", updated)
	}

	status := models.InquiryStatusContacted
	updated, _ = svc.Update(ctx, created.ID, validation.UpdateInquiry{Status: &status})
	if updated.Status != models.InquiryStatusContacted || updated.AdminNotes != notes {
		t.Errorf("expected status to change and notes to stay, got %+v", updated)
	}
}

func TestInquiryService_NotFound(t *testing.T) {
	svc := NewInquiryService(mock.NewInquiryRepository(), nil, nil, false)
	ctx := context.Background()
	status := models.InquiryStatusClosed

	if _, err := svc.GetByID(ctx, uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetByID: expected not found, got %v", err)
	}
	if _, err := svc.Update(ctx, uuid.New(), validation.UpdateInquiry{Status: &status}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Update: expected not found, got %v", err)
	}
	if err := svc.Delete(ctx, uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Delete: expected not found, got %v", err)
	}
}

func TestInquiryService_StatsZeroFilled(t *testing.T) {
	svc := NewInquiryService(mock.NewInquiryRepository(), nil, nil, false)
	ctx := context.Background()
	a, _ := svc.Create(ctx, validInquiry("a@example.com"))
	_, _ = svc.Create(ctx, validInquiry("b@example.com"))
	status := models.InquiryStatusConverted
	_, _ = svc.Update(ctx, a.ID, validation.UpdateInquiry{Status: &status})

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 2 {
		t.Errorf("expected total 2, got %d", stats.Total)
	}
	if len(stats.ByStatus) != len(models.InquiryStatuses) {
		t.Errorf("expected every status to be present, got %v", stats.ByStatus)
	}
	if stats.ByStatus[models.InquiryStatusNew] != 1 || stats.ByStatus[models.InquiryStatusConverted] != 1 {
		t.Errorf("unexpected counts %v", stats.ByStatus)
	}
	if n, ok := stats.ByStatus[models.InquiryStatusClosed]; !ok || n != 0 {
		t.Errorf("expected closed=0, got %d (present=%v)", n, ok)
	}
}
