package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/oleocontrol/oleocontrol/internal"
	notificationDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/notification"
	"github.com/oleocontrol/oleocontrol/internal/core/events"
)

type RepositoryAPI interface {
	GetAll(limit, offset int) ([]*notificationDatamodel.Notification, error)
	GetSentByUser(userID int64, limit, offset int) ([]*notificationDatamodel.Notification, error)
	GetReceivedByUser(userID int64, limit, offset int) ([]*notificationDatamodel.Notification, error)
	GetByID(id int64) (*notificationDatamodel.Notification, error)
	Create(n *notificationDatamodel.Notification) error
	Delete(id int64) error
	UserExists(userID int64) (bool, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo   RepositoryAPI
	bus    EventPublisher
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, bus EventPublisher, logger *slog.Logger) *Service {
	return &Service{repo: repo, bus: bus, logger: logger}
}

func (s *Service) List(limit, offset int) ([]Response, error) {
	models, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("no se pudieron listar las notificaciones", err)
	}
	return toResponses(models), nil
}

func (s *Service) ListSent(userID int64, limit, offset int) ([]Response, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}
	models, err := s.repo.GetSentByUser(userID, limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("no se pudieron listar las notificaciones", err)
	}
	return toResponses(models), nil
}

func (s *Service) ListReceived(userID int64, limit, offset int) ([]Response, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}
	models, err := s.repo.GetReceivedByUser(userID, limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("no se pudieron listar las notificaciones", err)
	}
	return toResponses(models), nil
}

func (s *Service) Create(ctx context.Context, senderID int64, dto CreateNotificationDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkUser(dto.ReceiverID); err != nil {
		return nil, internal.NewFieldValidationError(map[string]string{
			"receiver_id": "el destinatario indicado no existe",
		})
	}

	model := &notificationDatamodel.Notification{
		Message:    dto.Message,
		Date:       time.Now(),
		SenderID:   senderID,
		ReceiverID: dto.ReceiverID,
	}
	if err := s.repo.Create(model); err != nil {
		s.logger.Error("failed to create notification", "receiver_id", dto.ReceiverID, "error", err)
		return nil, internal.NewInternalError("no se pudo crear la notificación", err)
	}
	s.logger.Info("notification created", "notification_id", model.ID, "receiver_id", model.ReceiverID)

	_ = s.bus.Publish(ctx, events.NewNotificationSentEvent(
		model.ID, model.SenderID, model.ReceiverID, model.Message))

	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Get(id int64) (*Response, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrNotificationNotFound
	}
	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrNotificationNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete notification", "notification_id", id, "error", err)
		return internal.NewInternalError("no se pudo eliminar la notificación", err)
	}
	return nil
}

func (s *Service) checkUser(userID int64) error {
	exists, err := s.repo.UserExists(userID)
	if err != nil {
		return internal.NewInternalError("no se pudo comprobar el usuario", err)
	}
	if !exists {
		return internal.ErrUserNotFound
	}
	return nil
}

func toResponses(models []*notificationDatamodel.Notification) []Response {
	responses := make([]Response, 0, len(models))
	for _, n := range models {
		responses = append(responses, FromDataModel(n))
	}
	return responses
}
