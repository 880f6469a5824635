package quotation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"hostnhome/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultSessionTTL = 30 * time.Minute

	// submitTimeout bounds the create call so a session lock always outlives
	// the submit holding it.
	submitTimeout  = time.Minute
	sessionLockTTL = 2 * time.Minute
)

// DefaultWizardSessionService implements WizardSessionService on top of a SessionStore.
type DefaultWizardSessionService struct {
	Store   SessionStore
	Resorts ResortLister
	Creator QuotationCreator
	TTL     time.Duration
	Now     func() time.Time
}

func NewWizardSessionService(store SessionStore, resorts ResortLister, creator QuotationCreator, ttl time.Duration) *DefaultWizardSessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &DefaultWizardSessionService{
		Store:   store,
		Resorts: resorts,
		Creator: creator,
		TTL:     ttl,
		Now:     time.Now,
	}
}

func (s *DefaultWizardSessionService) logger() *zap.Logger {
	return zap.L().With(zap.String("component", wizardLoggerComponent))
}

func (s *DefaultWizardSessionService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultWizardSessionService) save(ctx context.Context, w *Wizard) error {
	w.UpdatedAt = s.now()
	return s.Store.Save(ctx, w, s.TTL)
}

// Start opens a new wizard for a vendor and loads its resorts once.
func (s *DefaultWizardSessionService) Start(ctx context.Context, vendorID string) (*Wizard, error) {
	w := NewWizard(vendorID, s.now())
	w.ID = uuid.New().String()
	w.LoadResorts(ctx, s.Resorts)

	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	s.logger().Debug("wizard started", zap.String("wizardId", w.ID), zap.String("vendorId", vendorID), zap.Int("resorts", len(w.Resorts)))
	return w, nil
}

func (s *DefaultWizardSessionService) Get(ctx context.Context, sessionID string) (*Wizard, error) {
	return s.Store.Load(ctx, sessionID)
}

// lock takes the session lock for one mutation. A request that finds the lock
// taken gets ErrSubmitInProgress when the holder is a submit, ErrSessionBusy
// otherwise.
func (s *DefaultWizardSessionService) lock(ctx context.Context, sessionID string) (func(), error) {
	token, ok, err := s.Store.AcquireLock(ctx, sessionID, sessionLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to lock quotation wizard: %w", err)
	}
	if !ok {
		w, err := s.Store.Load(ctx, sessionID)
		switch {
		case errors.Is(err, ErrSessionNotFound):
			return nil, err
		case err == nil && w.Submitting:
			return nil, ErrSubmitInProgress
		}
		return nil, ErrSessionBusy
	}
	return func() {
		if err := s.Store.ReleaseLock(context.Background(), sessionID, token); err != nil {
			s.logger().Error("releasing wizard lock failed", zap.String("wizardId", sessionID), zap.Error(err))
		}
	}, nil
}

// loadLocked locks and loads a session for a mutation. The caller must call
// unlock once the wizard is saved or deleted.
func (s *DefaultWizardSessionService) loadLocked(ctx context.Context, sessionID string) (w *Wizard, unlock func(), err error) {
	unlock, err = s.lock(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	w, err = s.Store.Load(ctx, sessionID)
	if err != nil {
		unlock()
		return nil, nil, err
	}
	if w.Submitting {
		// A flag younger than the lock TTL may belong to a create call that is
		// still running. An older one was left behind by a crashed request.
		if s.now().Sub(w.UpdatedAt) < sessionLockTTL {
			unlock()
			return nil, nil, ErrSubmitInProgress
		}
		s.logger().Warn("clearing stale submitting flag", zap.String("wizardId", sessionID))
		w.Submitting = false
	}
	return w, unlock, nil
}

// SetFields applies a batch of field edits. Unknown keys reject the whole batch.
func (s *DefaultWizardSessionService) SetFields(ctx context.Context, sessionID string, values map[string]string) (*Wizard, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		if _, ok := ParseFieldName(k); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w, unlock, err := s.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, k := range keys {
		name, _ := ParseFieldName(k)
		if err := w.SetField(name, values[k]); err != nil {
			return nil, err
		}
	}
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *DefaultWizardSessionService) Advance(ctx context.Context, sessionID string) (*Wizard, bool, error) {
	w, unlock, err := s.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	advanced := w.Advance()
	if err := s.save(ctx, w); err != nil {
		return nil, false, err
	}
	return w, advanced, nil
}

// Back moves to the previous step. Going back from step 1 ends the session.
func (s *DefaultWizardSessionService) Back(ctx context.Context, sessionID string) (*Wizard, bool, error) {
	w, unlock, err := s.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	if w.Back() {
		if err := s.Store.Delete(ctx, sessionID); err != nil {
			return nil, false, err
		}
		return w, true, nil
	}
	if err := s.save(ctx, w); err != nil {
		return nil, false, err
	}
	return w, false, nil
}

// ReloadResorts retries the resort fetch for a session.
func (s *DefaultWizardSessionService) ReloadResorts(ctx context.Context, sessionID string) (*Wizard, error) {
	w, unlock, err := s.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	w.LoadResorts(ctx, s.Resorts)
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Submit creates the quotation. The session lock keeps it to one in-flight
// request per session and holds off edits until it finishes. A successful
// submit ends the session; a failed one is saved untouched apart from its
// notice.
func (s *DefaultWizardSessionService) Submit(ctx context.Context, sessionID string) (*Wizard, *models.Quotation, error) {
	w, unlock, err := s.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	defer unlock()

	// Readers see the request as in flight while the create call runs.
	w.Submitting = true
	if err := s.save(ctx, w); err != nil {
		return nil, nil, err
	}
	w.Submitting = false

	createCtx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()
	created, submitErr := w.Submit(createCtx, s.Creator)
	if submitErr == nil {
		if err := s.Store.Delete(ctx, sessionID); err != nil {
			s.logger().Warn("deleting submitted wizard failed", zap.String("wizardId", sessionID), zap.Error(err))
		}
		s.logger().Info("quotation created", zap.String("wizardId", sessionID), zap.String("quotationId", created.ID))
		return w, created, nil
	}

	var verr *ValidationError
	if !errors.As(submitErr, &verr) && !errors.Is(submitErr, ErrNotAtPricingStep) {
		s.logger().Warn("quotation submission failed", zap.String("wizardId", sessionID), zap.Error(submitErr))
	}
	if err := s.save(ctx, w); err != nil {
		return nil, nil, err
	}
	return w, nil, submitErr
}

func (s *DefaultWizardSessionService) Cancel(ctx context.Context, sessionID string) error {
	_, unlock, err := s.loadLocked(ctx, sessionID)
	if err != nil {
		return err
	}
	defer unlock()
	return s.Store.Delete(ctx, sessionID)
}
