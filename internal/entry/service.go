package entry

import (
	"context"
	"log/slog"
	"time"

	"github.com/oleocontrol/oleocontrol/internal"
	entryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/entry"
	"github.com/oleocontrol/oleocontrol/internal/core/events"
)

type RepositoryAPI interface {
	GetAll(limit, offset int) ([]*entryDatamodel.Entry, error)
	GetAllByMember(memberID int64, limit, offset int) ([]*entryDatamodel.Entry, error)
	GetByID(id int64) (*entryDatamodel.Entry, error)
	Create(e *entryDatamodel.Entry) error
	Update(e *entryDatamodel.Entry) error
	Delete(id int64) error
	MemberExists(memberID int64) (bool, error)
	MemberEmail(memberID int64) (string, error)
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
		return nil, internal.NewInternalError("no se pudieron listar las entradas", err)
	}
	return toResponses(models), nil
}

func (s *Service) ListByMember(memberID int64, limit, offset int) ([]Response, error) {
	exists, err := s.repo.MemberExists(memberID)
	if err != nil {
		return nil, internal.NewInternalError("no se pudo comprobar el socio", err)
	}
	if !exists {
		return nil, internal.ErrMemberNotFound
	}

	models, err := s.repo.GetAllByMember(memberID, limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("no se pudieron listar las entradas", err)
	}
	return toResponses(models), nil
}

func (s *Service) Create(ctx context.Context, dto CreateEntryDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.MemberExists(dto.MemberID)
	if err != nil {
		return nil, internal.NewInternalError("no se pudo comprobar el socio", err)
	}
	if !exists {
		return nil, internal.NewFieldValidationError(map[string]string{
			"member_id": "el socio indicado no existe",
		})
	}

	entryDate, _ := time.Parse(DateLayout, dto.EntryDate)
	model := &entryDatamodel.Entry{
		EntryDate:      entryDate,
		OliveQuantity:  dto.OliveQuantity,
		AnalysisStatus: entryDatamodel.AnalysisStatusPending,
		MemberID:       dto.MemberID,
	}
	if err := s.repo.Create(model); err != nil {
		s.logger.Error("failed to create entry", "member_id", dto.MemberID, "error", err)
		return nil, internal.NewInternalError("no se pudo crear la entrada", err)
	}
	s.logger.Info("entry created", "entry_id", model.ID, "member_id", model.MemberID)

	email, err := s.repo.MemberEmail(model.MemberID)
	if err != nil {
		s.logger.Warn("member email lookup failed, skipping event", "member_id", model.MemberID, "error", err)
	} else {
		_ = s.bus.Publish(ctx, events.NewEntryCreatedEvent(
			model.ID, model.MemberID, email, model.OliveQuantity.String()))
	}

	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Get(id int64) (*Response, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEntryNotFound
	}
	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Update(id int64, dto UpdateEntryDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEntryNotFound
	}

	if dto.EntryDate != nil {
		entryDate, _ := time.Parse(DateLayout, *dto.EntryDate)
		model.EntryDate = entryDate
	}
	if dto.OliveQuantity != nil {
		if model.AnalysisStatus == entryDatamodel.AnalysisStatusComplete {
			return nil, internal.NewFieldValidationError(map[string]string{
				"olive_quantity": "no se puede modificar una entrada con análisis completado",
			})
		}
		model.OliveQuantity = *dto.OliveQuantity
	}
	if dto.AnalysisStatus != nil {
		model.AnalysisStatus = *dto.AnalysisStatus
	}

	if err := s.repo.Update(model); err != nil {
		s.logger.Error("failed to update entry", "entry_id", id, "error", err)
		return nil, internal.NewInternalError("no se pudo actualizar la entrada", err)
	}

	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrEntryNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete entry", "entry_id", id, "error", err)
		return internal.NewInternalError("no se pudo eliminar la entrada", err)
	}
	s.logger.Info("entry deleted", "entry_id", id)
	return nil
}

func toResponses(models []*entryDatamodel.Entry) []Response {
	responses := make([]Response, 0, len(models))
	for _, e := range models {
		responses = append(responses, FromDataModel(e))
	}
	return responses
}
