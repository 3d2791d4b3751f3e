package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"communityregistration/internal/delivery/http/helpers"
	"communityregistration/internal/domain"
)

// nameRegex matches a capitalized name: one uppercase letter followed by 2-30
// lowercase letters.
var nameRegex = regexp.MustCompile(`^[A-Z][a-z]{1,29}$`)

// emailRegex matches a syntactically plausible email address.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const minAge = 18

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterRequest is the request body for POST /register.
type RegisterRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Age        int    `json:"age"`
	EventTitle string `json:"event_title"`
}

// Validate implements helpers.Validator.
func (r *RegisterRequest) Validate() []helpers.FieldError {
	var errs []helpers.FieldError
	if !nameRegex.MatchString(r.FirstName) {
		errs = append(errs, helpers.FieldError{
			Field:   "first_name",
			Message: "must start with a capital letter and contain only alphabets",
		})
	}
	if !nameRegex.MatchString(r.LastName) {
		errs = append(errs, helpers.FieldError{
			Field:   "last_name",
			Message: "must start with a capital letter and contain only alphabets",
		})
	}
	if !emailRegex.MatchString(strings.TrimSpace(r.Email)) {
		errs = append(errs, helpers.FieldError{
			Field:   "email",
			Message: "must be a valid email address",
		})
	}
	if r.Age < minAge {
		errs = append(errs, helpers.FieldError{
			Field:   "age",
			Message: "you must be at least 18 years old",
		})
	}
	if strings.TrimSpace(r.EventTitle) == "" {
		errs = append(errs, helpers.FieldError{
			Field:   "event_title",
			Message: "event title is required",
		})
	}
	return errs
}

// RegisterResponseData is the data payload returned on a successful registration.
type RegisterResponseData struct {
	RegistrationID string `json:"registration_id"`
	Message        string `json:"message"`
}

// RegisterSuccessResponse is the success response envelope for POST /register (201).
type RegisterSuccessResponse struct {
	Data  *RegisterResponseData `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// Register godoc
// @Summary Register for an event
// @Description Registers the given person for the named event. Creates the user on first registration and the event on first reference. Rejects duplicate registrations and registrations for events at capacity.
// @Tags registration
// @Accept json
// @Produce json
// @Param body body controllers.RegisterRequest true "Registration details"
// @Success 201 {object} controllers.RegisterSuccessResponse "Registration created"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed (with details) or bad_request (duplicate, capacity)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	outcome, err := c.Service.Register(r.Context(), &domain.RegistrationRequest{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Age:        req.Age,
		EventTitle: req.EventTitle,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest,
				"You are already registered for this event.")
			return
		}
		if errors.Is(err, domain.ErrCapacityExceeded) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest,
				"Event is at full capacity.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError,
			"something went wrong")
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, &RegisterResponseData{
		RegistrationID: outcome.Registration.ID,
		Message:        "Successfully registered for " + outcome.Event.Title,
	})
}
