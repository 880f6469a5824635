package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bookingRepo "hostnhome/database/repository/booking"
	quotationRepo "hostnhome/database/repository/quotation"
	resortRepo "hostnhome/database/repository/resort"
	userRepo "hostnhome/database/repository/user"
	"hostnhome/handlers"
	"hostnhome/models"
	"hostnhome/services/booking"
	"hostnhome/services/quotation"
	"hostnhome/services/resort"
	"hostnhome/services/user"
	"hostnhome/utils"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resorts := resort.NewResortService(resortRepo.NewMemoryResortRepo(models.Resort{
		ID:       "7",
		VendorID: "v1",
		Name:     "Sea View",
		Location: "Goa",
		Slug:     "sea-view",
		Status:   models.ResortActive,
	}))
	quotations := quotation.NewQuotationService(quotationRepo.NewMemoryQuotationRepo())
	wizard := quotation.NewWizardSessionService(quotation.NewMemorySessionStore(), resorts, quotations, time.Minute)

	r := gin.New()
	RegisterRoutes(r, handlers.NewHandlerBundle(handlers.Services{
		Users:      user.NewUserService(userRepo.NewMemoryUserRepo(), time.Hour),
		Wizard:     wizard,
		Quotations: quotations,
		Bookings:   booking.NewBookingService(bookingRepo.NewMemoryBookingRepo(), quotations),
		Resorts:    resorts,
	}))
	return r
}

func tokenFor(t *testing.T, role, vendorID string) string {
	t.Helper()
	token, err := utils.GenerateToken(models.AuthSession{
		UserID:   "u-" + role + vendorID,
		Email:    role + "@example.com",
		Role:     role,
		VendorID: vendorID,
	}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) (int, map[string]json.RawMessage) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]json.RawMessage{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: bad JSON %q", method, path, w.Body.String())
		}
	}
	return w.Code, out
}

func decode(t *testing.T, raw json.RawMessage, v any) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
}

type wizardBody struct {
	ID          string            `json:"id"`
	CurrentStep int               `json:"currentStep"`
	Errors      map[string]string `json:"errors"`
	Notice      string            `json:"notice"`
	Quote       struct {
		Nights     int    `json:"nights"`
		ResortName string `json:"resortName"`
	} `json:"quote"`
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(t)
	code, body := do(t, r, http.MethodGet, "/health", "", nil)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var status string
	decode(t, body["status"], &status)
	if status != "ok" {
		t.Errorf("status = %q", status)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/api/quotations", "/api/bookings", "/api/resorts", "/api/admin/quotations", "/api/auth/me"} {
		if code, _ := do(t, r, http.MethodGet, path, "", nil); code != http.StatusUnauthorized {
			t.Errorf("GET %s = %d, want 401", path, code)
		}
	}
	if code, _ := do(t, r, http.MethodGet, "/api/quotations", "garbage", nil); code != http.StatusUnauthorized {
		t.Errorf("bad token = %d, want 401", code)
	}
}

func TestAdminRoutesRequireSuperAdmin(t *testing.T) {
	r := newTestRouter(t)
	if code, _ := do(t, r, http.MethodGet, "/api/admin/quotations", tokenFor(t, models.RoleVendor, "v1"), nil); code != http.StatusForbidden {
		t.Errorf("vendor = %d, want 403", code)
	}
	if code, _ := do(t, r, http.MethodGet, "/api/admin/quotations", tokenFor(t, models.RoleSuperAdmin, ""), nil); code != http.StatusOK {
		t.Errorf("super admin = %d, want 200", code)
	}
	if code, _ := do(t, r, http.MethodGet, "/api/quotations", tokenFor(t, models.RolePublic, ""), nil); code != http.StatusForbidden {
		t.Errorf("public role = %d, want 403", code)
	}
}

func TestWizardToBookingFlow(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, models.RoleVendor, "v1")

	code, body := do(t, r, http.MethodPost, "/api/quotations/wizard", token, nil)
	if code != http.StatusCreated {
		t.Fatalf("start = %d", code)
	}
	var wiz wizardBody
	decode(t, body["wizard"], &wiz)
	if wiz.ID == "" || wiz.CurrentStep != 1 {
		t.Fatalf("wizard = %+v", wiz)
	}
	base := "/api/quotations/wizard/" + wiz.ID

	code, body = do(t, r, http.MethodPost, base+"/next", token, nil)
	decode(t, body["wizard"], &wiz)
	if code != http.StatusOK || wiz.CurrentStep != 1 || wiz.Errors["resortId"] != "Please select a resort" {
		t.Fatalf("blocked next = %d %+v", code, wiz)
	}

	code, _ = do(t, r, http.MethodPatch, base+"/fields", token, map[string]string{
		"resortId":    "7",
		"checkIn":     "2024-12-25",
		"checkOut":    "2024-12-28",
		"guestName":   "Asha Rao",
		"email":       "asha@example.com",
		"phone":       "98765-43210",
		"totalAmount": "30000",
	})
	if code != http.StatusOK {
		t.Fatalf("fields = %d", code)
	}

	if code, _ := do(t, r, http.MethodPost, base+"/submit", token, nil); code != http.StatusConflict {
		t.Errorf("submit from step 1 = %d, want 409", code)
	}

	for i := 0; i < 2; i++ {
		code, body = do(t, r, http.MethodPost, base+"/next", token, nil)
		if code != http.StatusOK {
			t.Fatalf("next = %d", code)
		}
	}
	decode(t, body["wizard"], &wiz)
	if wiz.CurrentStep != 3 || wiz.Quote.Nights != 3 || wiz.Quote.ResortName != "Sea View" {
		t.Fatalf("pricing step wizard = %+v", wiz)
	}

	other := tokenFor(t, models.RoleVendor, "v2")
	if code, _ := do(t, r, http.MethodGet, base, other, nil); code != http.StatusNotFound {
		t.Errorf("other vendor GET wizard = %d, want 404", code)
	}

	code, body = do(t, r, http.MethodPost, base+"/submit", token, nil)
	if code != http.StatusCreated {
		t.Fatalf("submit = %d %s", code, body["message"])
	}
	var created models.Quotation
	decode(t, body["quotation"], &created)
	if created.ID == "" || created.Status != models.QuotationDraft || created.Phone != "9876543210" {
		t.Fatalf("created = %+v", created)
	}
	if code, _ := do(t, r, http.MethodGet, base, token, nil); code != http.StatusNotFound {
		t.Errorf("wizard after submit = %d, want 404", code)
	}

	code, body = do(t, r, http.MethodGet, "/api/quotations?status=draft", token, nil)
	if code != http.StatusOK {
		t.Fatalf("list = %d", code)
	}
	var listed []map[string]any
	var counts map[string]int
	decode(t, body["quotations"], &listed)
	decode(t, body["counts"], &counts)
	if len(listed) != 1 || counts["all"] != 1 || counts["draft"] != 1 {
		t.Errorf("listed %d counts %v", len(listed), counts)
	}
	if listed[0]["total_label"] != "₹30,000" {
		t.Errorf("total_label = %v", listed[0]["total_label"])
	}

	qPath := "/api/quotations/" + created.ID
	if code, _ := do(t, r, http.MethodPost, qPath+"/convert", token, nil); code != http.StatusConflict {
		t.Errorf("convert draft = %d, want 409", code)
	}
	for _, status := range []string{"sent", "accepted"} {
		if code, _ := do(t, r, http.MethodPatch, qPath+"/status", token, map[string]string{"status": status}); code != http.StatusOK {
			t.Fatalf("status %s = %d", status, code)
		}
	}

	code, body = do(t, r, http.MethodPost, qPath+"/convert", token, nil)
	if code != http.StatusCreated {
		t.Fatalf("convert = %d", code)
	}
	var booked struct {
		ID            string  `json:"id"`
		Status        string  `json:"status"`
		PaymentStatus string  `json:"payment_status"`
		Balance       float64 `json:"balance"`
	}
	decode(t, body["booking"], &booked)
	if booked.Status != models.BookingPending || booked.Balance != 30000 {
		t.Fatalf("booking = %+v", booked)
	}

	code, body = do(t, r, http.MethodPatch, "/api/bookings/"+booked.ID+"/payment", token, map[string]float64{"paid_amount": 10000})
	if code != http.StatusOK {
		t.Fatalf("payment = %d", code)
	}
	decode(t, body["booking"], &booked)
	if booked.PaymentStatus != models.PaymentPartial || booked.Balance != 20000 {
		t.Errorf("after payment = %+v", booked)
	}

	if code, _ := do(t, r, http.MethodGet, "/api/bookings/"+booked.ID, other, nil); code != http.StatusNotFound {
		t.Errorf("other vendor booking = %d, want 404", code)
	}
}

func TestWizardBackFromFirstStepCancels(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, models.RoleVendor, "v1")

	_, body := do(t, r, http.MethodPost, "/api/quotations/wizard", token, nil)
	var wiz wizardBody
	decode(t, body["wizard"], &wiz)

	code, body := do(t, r, http.MethodPost, "/api/quotations/wizard/"+wiz.ID+"/back", token, nil)
	var cancelled bool
	decode(t, body["cancelled"], &cancelled)
	if code != http.StatusOK || !cancelled {
		t.Fatalf("back = %d cancelled=%v", code, cancelled)
	}
}

func TestWizardRejectsUnknownField(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, models.RoleVendor, "v1")

	_, body := do(t, r, http.MethodPost, "/api/quotations/wizard", token, nil)
	var wiz wizardBody
	decode(t, body["wizard"], &wiz)

	code, _ := do(t, r, http.MethodPatch, "/api/quotations/wizard/"+wiz.ID+"/fields", token, map[string]string{"nights": "4"})
	if code != http.StatusBadRequest {
		t.Errorf("unknown field = %d, want 400", code)
	}
}

func TestSuperAdminNeedsVendorToStartWizard(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, models.RoleSuperAdmin, "")

	if code, _ := do(t, r, http.MethodPost, "/api/quotations/wizard", token, nil); code != http.StatusForbidden {
		t.Errorf("no vendor = %d, want 403", code)
	}
	if code, _ := do(t, r, http.MethodPost, "/api/quotations/wizard?vendorId=v1", token, nil); code != http.StatusCreated {
		t.Errorf("with vendorId = %d, want 201", code)
	}
}

func TestQuotationListRejectsBadFilters(t *testing.T) {
	r := newTestRouter(t)
	token := tokenFor(t, models.RoleVendor, "v1")

	if code, _ := do(t, r, http.MethodGet, "/api/quotations?status=archived", token, nil); code != http.StatusBadRequest {
		t.Errorf("bad status = %d", code)
	}
	if code, _ := do(t, r, http.MethodGet, "/api/quotations?dateFrom=yesterday", token, nil); code != http.StatusBadRequest {
		t.Errorf("bad date = %d", code)
	}
	if code, _ := do(t, r, http.MethodGet, "/api/quotations?status=all&dateFrom=2024-01-01", token, nil); code != http.StatusOK {
		t.Errorf("valid filter = %d", code)
	}
}

func TestResortRoutes(t *testing.T) {
	r := newTestRouter(t)
	vendor := tokenFor(t, models.RoleVendor, "v1")

	code, body := do(t, r, http.MethodPost, "/api/resorts", vendor, map[string]any{"name": "Hill Top", "location": "Ooty"})
	if code != http.StatusCreated {
		t.Fatalf("create = %d", code)
	}
	var created models.Resort
	decode(t, body["resort"], &created)
	if created.Slug != "hill-top" {
		t.Errorf("slug = %q", created.Slug)
	}

	if code, _ := do(t, r, http.MethodPost, "/api/resorts", tokenFor(t, models.RoleStaff, "v1"), map[string]any{"name": "X", "location": "Y"}); code != http.StatusForbidden {
		t.Errorf("staff create = %d, want 403", code)
	}

	code, body = do(t, r, http.MethodGet, "/api/resorts", vendor, nil)
	var resorts []models.Resort
	decode(t, body["resorts"], &resorts)
	if code != http.StatusOK || len(resorts) != 2 {
		t.Errorf("list = %d, %d resorts", code, len(resorts))
	}
	if code, _ := do(t, r, http.MethodGet, "/api/resorts/7", tokenFor(t, models.RoleVendor, "v2"), nil); code != http.StatusNotFound {
		t.Errorf("other vendor resort = %d, want 404", code)
	}
}

func TestRegisterLoginAndMe(t *testing.T) {
	r := newTestRouter(t)
	creds := map[string]string{"email": "Owner@Example.com", "password": "secret123"}

	if code, _ := do(t, r, http.MethodPost, "/api/auth/register", "", creds); code != http.StatusCreated {
		t.Fatalf("register = %d", code)
	}
	if code, _ := do(t, r, http.MethodPost, "/api/auth/register", "", creds); code != http.StatusConflict {
		t.Errorf("second register = %d, want 409", code)
	}

	code, body := do(t, r, http.MethodPost, "/api/auth/login", "", creds)
	if code != http.StatusOK {
		t.Fatalf("login = %d", code)
	}
	var token string
	var session models.AuthSession
	decode(t, body["token"], &token)
	decode(t, body["user"], &session)
	if session.Role != models.RoleVendor || session.VendorID == "" {
		t.Errorf("session = %+v", session)
	}

	if code, _ := do(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "owner@example.com", "password": "wrong-pass"}); code != http.StatusUnauthorized {
		t.Errorf("bad password = %d, want 401", code)
	}

	code, body = do(t, r, http.MethodGet, "/api/auth/me", token, nil)
	if code != http.StatusOK {
		t.Fatalf("me = %d", code)
	}
	var me models.User
	decode(t, body["user"], &me)
	if me.Email != "owner@example.com" {
		t.Errorf("me = %+v", me)
	}
}
