package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/c4flow/studio-service/internal/concurrency"
	"github.com/c4flow/studio-service/internal/errx"
	"github.com/c4flow/studio-service/internal/models"
	logx "github.com/c4flow/studio-service/pkg/logger"
)

const (
	msgFieldsRequired = "All fields are required."
	msgInvalidEmail   = "Please enter a valid email address."
	msgMessageTooLong = "Message must be under 2000 characters."
	msgNameTooLong    = "Name must be under 200 characters."
	msgSendFailed     = "Failed to send message. Please try again later."
)

type SubmissionStore interface {
	CreateSubmission(ctx context.Context, sub models.ContactSubmission) error
}

type ContactPublisher interface {
	PublishContactSubmitted(ctx context.Context, sub models.ContactSubmission, traceID string) error
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type IdempotencyStore interface {
	Claim(ctx context.Context, key, id string) (existing string, claimed bool, err error)
	Release(ctx context.Context, key string) error
}

type ContactInput struct {
	models.ContactRequest
	ClientIP       string
	IdempotencyKey string
	TraceID        string
}

type ContactResult struct {
	ID        string `json:"id"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// ContactService accepts contact form submissions. Each one is stored and
// handed to the email relay; it counts as sent when either step succeeds.
type ContactService struct {
	store     SubmissionStore
	publisher ContactPublisher
	limiter   RateLimiter
	idem      IdempotencyStore
	validate  *validator.Validate
	now       func() time.Time
}

func NewContactService(store SubmissionStore, publisher ContactPublisher, limiter RateLimiter, idem IdempotencyStore) *ContactService {
	return &ContactService{
		store:     store,
		publisher: publisher,
		limiter:   limiter,
		idem:      idem,
		validate:  validator.New(),
		now:       time.Now,
	}
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) (ContactResult, error) {
	req := models.ContactRequest{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}
	if err := s.check(req); err != nil {
		return ContactResult{}, err
	}

	if s.limiter != nil && in.ClientIP != "" {
		ok, err := s.limiter.Allow(ctx, in.ClientIP)
		switch {
		case err != nil:
			// fail open: a Redis outage must not take the form down
			logx.Warn().Err(err).Str("client_ip", in.ClientIP).Msg("contact rate limit unavailable")
		case !ok:
			return ContactResult{}, errx.RateLimited()
		}
	}

	id := uuid.NewString()
	idemKey := strings.TrimSpace(in.IdempotencyKey)
	if s.idem != nil && idemKey != "" {
		existing, claimed, err := s.idem.Claim(ctx, idemKey, id)
		switch {
		case err != nil:
			logx.Warn().Err(err).Str("idempotency_key", idemKey).Msg("contact idempotency unavailable")
			idemKey = ""
		case !claimed:
			return ContactResult{ID: existing, Duplicate: true}, nil
		}
	} else {
		idemKey = ""
	}

	sub := models.ContactSubmission{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		ClientIP:    in.ClientIP,
		SubmittedAt: s.now().UTC(),
	}

	errs := concurrency.Settle(ctx,
		func(ctx context.Context) error { return s.store.CreateSubmission(ctx, sub) },
		func(ctx context.Context) error { return s.publisher.PublishContactSubmitted(ctx, sub, in.TraceID) },
	)
	if errs[0] != nil {
		logx.Error().Err(errs[0]).Str("submission_id", id).Msg("store contact submission failed")
	}
	if errs[1] != nil {
		logx.Error().Err(errs[1]).Str("submission_id", id).Msg("publish contact submission failed")
	}
	if errs[0] != nil && errs[1] != nil {
		if idemKey != "" {
			if err := s.idem.Release(ctx, idemKey); err != nil {
				logx.Warn().Err(err).Str("idempotency_key", idemKey).Msg("release idempotency key failed")
			}
		}
		return ContactResult{}, errx.New(errors.Join(errs...), http.StatusInternalServerError, msgSendFailed)
	}

	logx.Info().Str("submission_id", id).Bool("stored", errs[0] == nil).Bool("published", errs[1] == nil).Msg("contact submission accepted")
	return ContactResult{ID: id}, nil
}

// check maps validation failures onto visitor-facing messages. Missing
// fields are reported before anything else.
func (s *ContactService) check(req models.ContactRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errx.Validation(msgFieldsRequired)
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return errx.Validation(msgFieldsRequired)
		}
	}
	switch fe := verrs[0]; fe.Field() {
	case "Email":
		return errx.Validation(msgInvalidEmail)
	case "Message":
		return errx.Validation(msgMessageTooLong)
	default:
		return errx.Validation(msgNameTooLong)
	}
}
