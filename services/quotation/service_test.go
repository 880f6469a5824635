package quotation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	quotationRepo "hostnhome/database/repository/quotation"
	"hostnhome/models"
)

func seedQuotation(t *testing.T, svc *DefaultQuotationService, vendorID, guest, status string, checkIn time.Time) *models.Quotation {
	t.Helper()
	q, err := svc.CreateQuotation(context.Background(), vendorID, models.QuotationPayload{
		ResortID:    "7",
		GuestName:   guest,
		Email:       "guest@example.com",
		Phone:       "9876543210",
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, 2),
		Adults:      2,
		Rooms:       1,
		TotalAmount: 12000,
		Status:      status,
	})
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}
	return q
}

func TestQuotationStatusTransitions(t *testing.T) {
	svc := NewQuotationService(quotationRepo.NewMemoryQuotationRepo())
	ctx := context.Background()
	q := seedQuotation(t, svc, "v1", "Asha", "", testNow)

	if q.Status != models.QuotationDraft {
		t.Fatalf("default status = %q", q.Status)
	}

	updated, err := svc.UpdateStatus(ctx, "v1", q.ID, models.QuotationSent)
	if err != nil || updated.Status != models.QuotationSent {
		t.Fatalf("draft -> sent: %v %+v", err, updated)
	}

	_, err = svc.UpdateStatus(ctx, "v1", q.ID, models.QuotationConverted)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != "invalidTransition" {
		t.Fatalf("sent -> converted err = %v", err)
	}

	_, err = svc.UpdateStatus(ctx, "v1", q.ID, "archived")
	if !errors.As(err, &statusErr) || statusErr.Code != "unknownStatus" {
		t.Fatalf("unknown status err = %v", err)
	}
}

func TestQuotationVendorScoping(t *testing.T) {
	svc := NewQuotationService(quotationRepo.NewMemoryQuotationRepo())
	ctx := context.Background()
	q := seedQuotation(t, svc, "v1", "Asha", "", testNow)

	if _, err := svc.Get(ctx, "v2", q.ID); !errors.Is(err, ErrQuotationNotFound) {
		t.Errorf("other vendor Get = %v", err)
	}
	if _, err := svc.Get(ctx, "", q.ID); err != nil {
		t.Errorf("unscoped Get = %v", err)
	}
	if err := svc.Delete(ctx, "v2", q.ID); !errors.Is(err, ErrQuotationNotFound) {
		t.Errorf("other vendor Delete = %v", err)
	}
	if err := svc.Delete(ctx, "v1", q.ID); err != nil {
		t.Errorf("Delete = %v", err)
	}
}

func TestQuotationListFiltersAndCounts(t *testing.T) {
	svc := NewQuotationService(quotationRepo.NewMemoryQuotationRepo())
	ctx := context.Background()
	seedQuotation(t, svc, "v1", "Asha Rao", models.QuotationDraft, testNow)
	seedQuotation(t, svc, "v1", "Vikram Shah", models.QuotationSent, testNow)
	seedQuotation(t, svc, "v1", "Meera Iyer", models.QuotationSent, testNow)
	seedQuotation(t, svc, "v2", "Other Vendor", models.QuotationSent, testNow)

	sent, err := svc.List(ctx, "v1", models.QuotationFilter{Status: models.QuotationSent})
	if err != nil || len(sent) != 2 {
		t.Fatalf("sent = %v, %v", sent, err)
	}

	found, _ := svc.List(ctx, "v1", models.QuotationFilter{Search: "SHAH"})
	if len(found) != 1 || found[0].GuestName != "Vikram Shah" {
		t.Errorf("search = %+v", found)
	}

	counts, err := svc.StatusCounts(ctx, "v1")
	if err != nil {
		t.Fatal(err)
	}
	if counts["all"] != 3 || counts[models.QuotationSent] != 2 || counts[models.QuotationDraft] != 1 {
		t.Errorf("counts = %v", counts)
	}

	all, _ := svc.List(ctx, "", models.QuotationFilter{})
	if len(all) != 4 {
		t.Errorf("unscoped list has %d quotations", len(all))
	}
}

func TestExpireStale(t *testing.T) {
	svc := NewQuotationService(quotationRepo.NewMemoryQuotationRepo())
	svc.Now = func() time.Time { return testNow }
	ctx := context.Background()

	past := seedQuotation(t, svc, "v1", "Past", models.QuotationSent, testNow.AddDate(0, 0, -2))
	today := seedQuotation(t, svc, "v1", "Today", models.QuotationDraft, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC))
	accepted := seedQuotation(t, svc, "v1", "Accepted", models.QuotationAccepted, testNow.AddDate(0, 0, -5))

	n, err := svc.ExpireStale(ctx)
	if err != nil || n != 1 {
		t.Fatalf("ExpireStale = %d, %v", n, err)
	}
	for id, want := range map[string]string{
		past.ID:     models.QuotationExpired,
		today.ID:    models.QuotationDraft,
		accepted.ID: models.QuotationAccepted,
	} {
		got, _ := svc.Get(ctx, "v1", id)
		if got.Status != want {
			t.Errorf("%s status = %q, want %q", got.GuestName, got.Status, want)
		}
	}
}

type failingRepo struct {
	quotationRepo.QuotationRepository
}

func (failingRepo) Create(context.Context, *models.Quotation) error {
	return errors.New("connection reset by peer")
}

func TestCreateQuotationHidesStorageErrors(t *testing.T) {
	svc := NewQuotationService(failingRepo{})
	_, err := svc.CreateQuotation(context.Background(), "v1", models.QuotationPayload{})
	if err == nil || err.Error() != NoticeCreateFailed {
		t.Errorf("err = %v", err)
	}
}

// racingRepo lets another writer reject the quotation just before the first
// status update lands.
type racingRepo struct {
	*quotationRepo.MemoryQuotationRepo
	once sync.Once
}

func (r *racingRepo) UpdateStatus(ctx context.Context, vendorID, id, from, to string) error {
	r.once.Do(func() {
		_ = r.MemoryQuotationRepo.UpdateStatus(ctx, vendorID, id, from, models.QuotationRejected)
	})
	return r.MemoryQuotationRepo.UpdateStatus(ctx, vendorID, id, from, to)
}

func TestUpdateStatusLosesToConcurrentChange(t *testing.T) {
	svc := NewQuotationService(&racingRepo{MemoryQuotationRepo: quotationRepo.NewMemoryQuotationRepo()})
	ctx := context.Background()
	q := seedQuotation(t, svc, "v1", "Asha", "", testNow)

	_, err := svc.UpdateStatus(ctx, "v1", q.ID, models.QuotationSent)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != "invalidTransition" {
		t.Fatalf("err = %v", err)
	}
	after, _ := svc.Get(ctx, "v1", q.ID)
	if after.Status != models.QuotationRejected {
		t.Errorf("status = %q, want the concurrent rejection to stand", after.Status)
	}
}

func TestRevertConversion(t *testing.T) {
	svc := NewQuotationService(quotationRepo.NewMemoryQuotationRepo())
	ctx := context.Background()
	q := seedQuotation(t, svc, "v1", "Asha", "", testNow)

	var statusErr *StatusError
	if err := svc.RevertConversion(ctx, "v1", q.ID); !errors.As(err, &statusErr) {
		t.Fatalf("revert of a draft = %v", err)
	}
	for _, status := range []string{models.QuotationSent, models.QuotationAccepted, models.QuotationConverted} {
		if _, err := svc.UpdateStatus(ctx, "v1", q.ID, status); err != nil {
			t.Fatalf("-> %s: %v", status, err)
		}
	}
	if err := svc.RevertConversion(ctx, "v1", q.ID); err != nil {
		t.Fatalf("RevertConversion: %v", err)
	}
	after, _ := svc.Get(ctx, "v1", q.ID)
	if after.Status != models.QuotationAccepted {
		t.Errorf("status = %q", after.Status)
	}
	if err := svc.RevertConversion(ctx, "v2", q.ID); !errors.Is(err, ErrQuotationNotFound) {
		t.Errorf("other vendor = %v", err)
	}
}
