package quotationRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"hostnhome/database"
	"hostnhome/models"
)

func seed(t *testing.T, repo *MemoryQuotationRepo, q models.Quotation, createdAt time.Time) models.Quotation {
	t.Helper()
	repo.now = func() time.Time { return createdAt }
	if err := repo.Create(context.Background(), &q); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return q
}

func TestMemoryRepoScopesByVendor(t *testing.T) {
	repo := NewMemoryQuotationRepo()
	base := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	q := seed(t, repo, models.Quotation{VendorID: "v1", Status: models.QuotationDraft}, base)

	if _, err := repo.GetByID(context.Background(), "v2", q.ID); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other vendor, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), "", q.ID); err != nil {
		t.Fatalf("unscoped lookup failed: %v", err)
	}
	if err := repo.Delete(context.Background(), "v2", q.ID); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting as other vendor, got %v", err)
	}
}

func TestMemoryRepoListOrderAndFilters(t *testing.T) {
	repo := NewMemoryQuotationRepo()
	base := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	older := seed(t, repo, models.Quotation{VendorID: "v1", Status: models.QuotationDraft}, base)
	newer := seed(t, repo, models.Quotation{VendorID: "v1", Status: models.QuotationSent}, base.Add(time.Hour))

	all, err := repo.List(context.Background(), "v1", models.QuotationFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].ID != newer.ID || all[1].ID != older.ID {
		t.Fatalf("expected newest first, got %+v", all)
	}

	sent, _ := repo.List(context.Background(), "v1", models.QuotationFilter{Status: models.QuotationSent})
	if len(sent) != 1 || sent[0].ID != newer.ID {
		t.Fatalf("status filter mismatch: %+v", sent)
	}

	from := base.Add(30 * time.Minute)
	recent, _ := repo.List(context.Background(), "v1", models.QuotationFilter{DateFrom: &from})
	if len(recent) != 1 || recent[0].ID != newer.ID {
		t.Fatalf("date filter mismatch: %+v", recent)
	}
}

func TestMemoryRepoExpireBefore(t *testing.T) {
	repo := NewMemoryQuotationRepo()
	base := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	past := seed(t, repo, models.Quotation{VendorID: "v1", Status: models.QuotationSent, CheckIn: base.AddDate(0, 0, -1)}, base)
	future := seed(t, repo, models.Quotation{VendorID: "v1", Status: models.QuotationDraft, CheckIn: base.AddDate(0, 0, 3)}, base)
	accepted := seed(t, repo, models.Quotation{VendorID: "v1", Status: models.QuotationAccepted, CheckIn: base.AddDate(0, 0, -2)}, base)

	n, err := repo.ExpireBefore(context.Background(), base)
	if err != nil {
		t.Fatalf("ExpireBefore: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 expired, got %d", n)
	}

	check := func(id, want string) {
		got, _ := repo.GetByID(context.Background(), "", id)
		if got.Status != want {
			t.Errorf("quotation %s: status %q, want %q", id, got.Status, want)
		}
	}
	check(past.ID, models.QuotationExpired)
	check(future.ID, models.QuotationDraft)
	check(accepted.ID, models.QuotationAccepted)
}

func TestMemoryRepoUpdateStatusIsConditional(t *testing.T) {
	repo := NewMemoryQuotationRepo()
	q := seed(t, repo, models.Quotation{VendorID: "v1", Status: models.QuotationAccepted}, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	if err := repo.UpdateStatus(ctx, "v1", q.ID, models.QuotationAccepted, models.QuotationConverted); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if err := repo.UpdateStatus(ctx, "v1", q.ID, models.QuotationAccepted, models.QuotationConverted); !errors.Is(err, database.ErrConflict) {
		t.Fatalf("second claim: got %v, want ErrConflict", err)
	}
	if err := repo.UpdateStatus(ctx, "v2", q.ID, models.QuotationConverted, models.QuotationAccepted); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("other vendor: got %v", err)
	}
}
