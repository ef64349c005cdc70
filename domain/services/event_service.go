package services

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"bethouse/domain/apperrors"
	"bethouse/domain/entities"
	"bethouse/domain/events"
	"bethouse/domain/interfaces"
)

type eventService struct {
	accountRepo    interfaces.AccountRepository
	eventRepo      interfaces.EventRepository
	betRepo        interfaces.BetRepository
	eventPublisher interfaces.EventPublisher
}

// NewEventService creates a new event moderation service
func NewEventService(
	accountRepo interfaces.AccountRepository,
	eventRepo interfaces.EventRepository,
	betRepo interfaces.BetRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.EventService {
	return &eventService{
		accountRepo:    accountRepo,
		eventRepo:      eventRepo,
		betRepo:        betRepo,
		eventPublisher: eventPublisher,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *entities.Event) (*entities.Event, error) {
	event.Status = entities.EventStatusPending
	if err := event.Validate(); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *eventService) ListApproved(ctx context.Context) ([]*entities.Event, error) {
	list, err := s.eventRepo.ListByStatus(ctx, entities.EventStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return list, nil
}

func (s *eventService) Search(ctx context.Context, keyword string) ([]*entities.Event, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: search keyword is required", apperrors.ErrValidation)
	}

	list, err := s.eventRepo.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	return list, nil
}

func (s *eventService) Review(ctx context.Context, moderatorEmail string, eventID int64, approve bool, reason string) (*entities.Event, error) {
	moderator, err := s.accountRepo.GetByEmail(ctx, moderatorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to look up moderator: %w", err)
	}
	if moderator == nil || !moderator.IsModerator() {
		return nil, fmt.Errorf("%w: only moderators can review events", apperrors.ErrPermission)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event %d", apperrors.ErrNotFound, eventID)
	}
	if !event.IsPending() {
		return nil, fmt.Errorf("%w: event %d has already been reviewed (%s)", apperrors.ErrValidation, eventID, event.Status)
	}

	status := entities.EventStatusApproved
	if !approve {
		status = entities.EventStatusRejected
	}
	if err := s.eventRepo.UpdateStatus(ctx, eventID, status); err != nil {
		return nil, fmt.Errorf("failed to update event status: %w", err)
	}
	event.Status = status

	if status == entities.EventStatusRejected {
		// Buffered until the unit of work commits; the notification
		// collaborator picks it up from there. A failed notification never
		// rolls back the rejection.
		if err := s.eventPublisher.Publish(events.EventRejectedEvent{
			EventID:    event.ID,
			EventName:  event.Name,
			OwnerEmail: event.OwnerEmail,
			Reason:     rejectionReason(reason),
		}); err != nil {
			log.WithError(err).Error("Failed to publish event rejected event")
		}
	}

	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return fmt.Errorf("%w: event %d", apperrors.ErrNotFound, eventID)
	}

	open, err := s.betRepo.CountByEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to count bets: %w", err)
	}
	if open > 0 {
		return fmt.Errorf("%w: event %d has %d open bets; settle it instead", apperrors.ErrValidation, eventID, open)
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// rejectionReason maps the canned moderation reason codes to their fixed
// texts; anything else is passed through verbatim.
func rejectionReason(code string) string {
	switch code {
	case "1":
		return "confusing or unclear event description"
	case "2":
		return "inappropriate content"
	case "3":
		return "violates the platform privacy policy or terms of use"
	default:
		return code
	}
}
