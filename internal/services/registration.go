package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityregistration/internal/domain"
)

// confirmationSendTimeout bounds the post-commit email attempt. The send runs
// detached from the request, so the request context cannot be used.
const confirmationSendTimeout = 30 * time.Second

type registrationService struct {
	store        domain.RegistrationStore
	catalog      domain.EventCatalog
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewRegistrationService creates a RegistrationService over the given store,
// catalog, and email service. emailService may be nil, in which case no
// confirmation emails are sent.
func NewRegistrationService(
	store domain.RegistrationStore,
	catalog domain.EventCatalog,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		store:        store,
		catalog:      catalog,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *registrationService) Register(ctx context.Context, req *domain.RegistrationRequest) (*domain.RegistrationOutcome, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.EventTitle = strings.TrimSpace(req.EventTitle)

	// The catalog is static reference data; look it up before the transaction
	// so the row lock is never held across a file read.
	entry, err := s.catalog.FindByTitle(ctx, req.EventTitle)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("catalog lookup: %w", err)
		}
		entry = nil
	}

	outcome, err := s.store.Register(ctx, req, entry)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) || errors.Is(err, domain.ErrCapacityExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	// Fire-and-forget confirmation email. The registration is already
	// committed; a send failure is logged and never reaches the caller.
	s.notify(outcome)

	return outcome, nil
}

func (s *registrationService) notify(outcome *domain.RegistrationOutcome) {
	if s.emailService == nil {
		return
	}
	user, event := outcome.User, outcome.Event
	data := &domain.RegistrationConfirmedEmailData{
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		EventTitle:    event.Title,
		EventDate:     event.Date.Format("Monday, January 2, 2006"),
		EventTime:     event.Date.Format("3:04 PM MST"),
		EventLocation: event.Location,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), confirmationSendTimeout)
		defer cancel()
		if err := s.emailService.SendRegistrationConfirmed(ctx, data); err != nil {
			s.logger.Error("confirmation email failed",
				"email", user.Email,
				"event", event.Title,
				"err", err,
			)
		}
	}()
}
