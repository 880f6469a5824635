package features

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	quotationRepo "hostnhome/database/repository/quotation"
	"hostnhome/models"
	"hostnhome/services/quotation"

	"github.com/cucumber/godog"
)

type resortTable struct {
	resorts []models.Resort
	err     error
}

func (r *resortTable) ListResorts(context.Context, string) ([]models.Resort, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.resorts, nil
}

type failingCreator struct {
	message string
}

func (f failingCreator) CreateQuotation(context.Context, string, models.QuotationPayload) (*models.Quotation, error) {
	return nil, errors.New(f.message)
}

type wizardTestContext struct {
	vendorID   string
	resorts    *resortTable
	quotations *quotation.DefaultQuotationService
	creator    quotation.QuotationCreator
	svc        *quotation.DefaultWizardSessionService
	wizard     *quotation.Wizard
	cancelled  bool
	err        error
}

func (c *wizardTestContext) reset() {
	c.vendorID = ""
	c.resorts = &resortTable{}
	c.quotations = quotation.NewQuotationService(quotationRepo.NewMemoryQuotationRepo())
	c.creator = c.quotations
	c.svc = nil
	c.wizard = nil
	c.cancelled = false
	c.err = nil
}

func (c *wizardTestContext) theVendorHasTheResorts(vendorID string, table *godog.Table) error {
	c.vendorID = vendorID
	c.resorts.resorts = nil
	for _, row := range table.Rows[1:] {
		c.resorts.resorts = append(c.resorts.resorts, models.Resort{
			ID:       models.FlexibleID(row.Cells[0].Value),
			VendorID: vendorID,
			Name:     row.Cells[1].Value,
			Status:   models.ResortActive,
		})
	}
	return nil
}

func (c *wizardTestContext) loadingResortsFails() error {
	c.resorts.err = errors.New("resort service unavailable")
	return nil
}

func (c *wizardTestContext) creatingQuotationsFailsWith(message string) error {
	c.creator = failingCreator{message: message}
	if c.svc != nil {
		c.svc.Creator = c.creator
	}
	return nil
}

func (c *wizardTestContext) aNewWizardStartedOn(day string) error {
	now, err := time.Parse("2006-01-02", day)
	if err != nil {
		return err
	}
	now = now.Add(9 * time.Hour)
	c.svc = quotation.NewWizardSessionService(quotation.NewMemorySessionStore(), c.resorts, c.creator, time.Hour)
	c.svc.Now = func() time.Time { return now }
	c.wizard, err = c.svc.Start(context.Background(), c.vendorID)
	return err
}

func (c *wizardTestContext) setFields(values map[string]string) error {
	w, err := c.svc.SetFields(context.Background(), c.wizard.ID, values)
	if err != nil {
		return err
	}
	c.wizard = w
	return nil
}

func (c *wizardTestContext) iSetTo(field, value string) error {
	return c.setFields(map[string]string{field: value})
}

func (c *wizardTestContext) iCompleteTheDetails(resortID, checkIn, checkOut string) error {
	return c.setFields(map[string]string{
		"resortId": resortID,
		"checkIn":  checkIn,
		"checkOut": checkOut,
		"rooms":    "1",
		"adults":   "2",
		"children": "0",
	})
}

func (c *wizardTestContext) iCompleteTheGuestDetails(name, email, phone string) error {
	return c.setFields(map[string]string{
		"guestName": name,
		"email":     email,
		"phone":     phone,
	})
}

func (c *wizardTestContext) iPressNext() error {
	w, _, err := c.svc.Advance(context.Background(), c.wizard.ID)
	if err != nil {
		return err
	}
	c.wizard = w
	return nil
}

func (c *wizardTestContext) iPressBack() error {
	w, cancelled, err := c.svc.Back(context.Background(), c.wizard.ID)
	if err != nil {
		return err
	}
	c.wizard = w
	c.cancelled = cancelled
	return nil
}

func (c *wizardTestContext) iSubmitTheQuotation() error {
	w, _, err := c.svc.Submit(context.Background(), c.wizard.ID)
	c.err = err
	if w != nil {
		c.wizard = w
	}
	return nil
}

func (c *wizardTestContext) theWizardIsOnStep(step int) error {
	if int(c.wizard.CurrentStep) != step {
		return fmt.Errorf("expected step %d, got %d (errors %v)", step, c.wizard.CurrentStep, c.wizard.Errors)
	}
	return nil
}

func (c *wizardTestContext) theFieldIs(field, want string) error {
	got, ok := c.wizard.Form.Get(quotation.FieldName(field))
	if !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	if got != want {
		return fmt.Errorf("expected %s to be %q, got %q", field, want, got)
	}
	return nil
}

func (c *wizardTestContext) theFieldHasTheError(field, want string) error {
	if got := c.wizard.Errors[quotation.FieldName(field)]; got != want {
		return fmt.Errorf("expected %s error %q, got %q", field, want, got)
	}
	return nil
}

func (c *wizardTestContext) theQuoteShowsNightsAt(nights int, resort string) error {
	q := c.wizard.Quote()
	if q.Nights != nights {
		return fmt.Errorf("expected %d nights, got %d", nights, q.Nights)
	}
	if q.ResortName != resort {
		return fmt.Errorf("expected resort %q, got %q", resort, q.ResortName)
	}
	return nil
}

func (c *wizardTestContext) theQuoteBalanceIs(balance int) error {
	if got := c.wizard.Quote().Balance; got != float64(balance) {
		return fmt.Errorf("expected balance %d, got %v", balance, got)
	}
	return nil
}

func (c *wizardTestContext) theNoticeIs(notice string) error {
	if c.wizard.Notice != notice {
		return fmt.Errorf("expected notice %q, got %q", notice, c.wizard.Notice)
	}
	return nil
}

func (c *wizardTestContext) aDraftQuotationWasStored(guest string) error {
	if c.err != nil {
		return fmt.Errorf("submit failed: %v", c.err)
	}
	stored, err := c.quotations.List(context.Background(), c.vendorID, models.QuotationFilter{})
	if err != nil {
		return err
	}
	if len(stored) != 1 {
		return fmt.Errorf("expected 1 stored quotation, got %d", len(stored))
	}
	if stored[0].GuestName != guest || stored[0].Status != models.QuotationDraft {
		return fmt.Errorf("unexpected quotation %+v", stored[0])
	}
	return nil
}

func (c *wizardTestContext) theWizardIsCancelled() error {
	if !c.cancelled {
		return errors.New("expected the wizard to be cancelled")
	}
	if _, err := c.svc.Get(context.Background(), c.wizard.ID); !errors.Is(err, quotation.ErrSessionNotFound) {
		return fmt.Errorf("expected the session to be gone, got %v", err)
	}
	return nil
}

func (c *wizardTestContext) theWizardIsNotSubmitting() error {
	if c.wizard.Submitting {
		return errors.New("wizard still marked as submitting")
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &wizardTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the vendor "([^"]*)" has the resorts:$`, tc.theVendorHasTheResorts)
	ctx.Step(`^loading resorts fails$`, tc.loadingResortsFails)
	ctx.Step(`^creating quotations fails with "([^"]*)"$`, tc.creatingQuotationsFailsWith)
	ctx.Step(`^a new quotation wizard started on "([^"]*)"$`, tc.aNewWizardStartedOn)

	// When steps
	ctx.Step(`^I set "([^"]*)" to "([^"]*)"$`, tc.iSetTo)
	ctx.Step(`^I complete the details for resort "([^"]*)" from "([^"]*)" to "([^"]*)"$`, tc.iCompleteTheDetails)
	ctx.Step(`^I complete the guest details for "([^"]*)" with email "([^"]*)" and phone "([^"]*)"$`, tc.iCompleteTheGuestDetails)
	ctx.Step(`^I press next$`, tc.iPressNext)
	ctx.Step(`^I press back$`, tc.iPressBack)
	ctx.Step(`^I submit the quotation$`, tc.iSubmitTheQuotation)

	// Then steps
	ctx.Step(`^the wizard is on step (\d+)$`, tc.theWizardIsOnStep)
	ctx.Step(`^the field "([^"]*)" is "([^"]*)"$`, tc.theFieldIs)
	ctx.Step(`^the field "([^"]*)" has the error "([^"]*)"$`, tc.theFieldHasTheError)
	ctx.Step(`^the quote shows (\d+) nights at "([^"]*)"$`, tc.theQuoteShowsNightsAt)
	ctx.Step(`^the quote balance is (\d+)$`, tc.theQuoteBalanceIs)
	ctx.Step(`^the notice is "([^"]*)"$`, tc.theNoticeIs)
	ctx.Step(`^a draft quotation for "([^"]*)" was stored$`, tc.aDraftQuotationWasStored)
	ctx.Step(`^the wizard is cancelled$`, tc.theWizardIsCancelled)
	ctx.Step(`^the wizard is not submitting$`, tc.theWizardIsNotSubmitting)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"wizard.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
