package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/oleocontrol/oleocontrol/internal"
	analysisDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/analysis"
	entryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/entry"
	"github.com/oleocontrol/oleocontrol/internal/core/events"
)

type RepositoryAPI interface {
	GetAll(limit, offset int) ([]*analysisDatamodel.Analysis, error)
	GetAllByEmployee(employeeID int64, limit, offset int) ([]*analysisDatamodel.Analysis, error)
	GetAllByMember(memberID int64, limit, offset int) ([]*analysisDatamodel.Analysis, error)
	GetByID(id int64) (*analysisDatamodel.Analysis, error)
	GetEntry(entryID int64) (*entryDatamodel.Entry, error)
	ExistsForEntry(entryID int64) (bool, error)
	// Create persists the analysis; when complete is true it also marks the
	// entry Complete, copies the oil quantity onto it and credits the
	// member's oil inventory, all in one transaction.
	Create(a *analysisDatamodel.Analysis, complete bool) error
	Update(a *analysisDatamodel.Analysis, complete bool) error
	Delete(id int64) error
	MemberEmailForEntry(entryID int64) (string, error)
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
		return nil, internal.NewInternalError("no se pudieron listar los análisis", err)
	}
	return toResponses(models), nil
}

func (s *Service) ListByEmployee(employeeID int64, limit, offset int) ([]Response, error) {
	models, err := s.repo.GetAllByEmployee(employeeID, limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("no se pudieron listar los análisis", err)
	}
	return toResponses(models), nil
}

func (s *Service) ListByMember(memberID int64, limit, offset int) ([]Response, error) {
	models, err := s.repo.GetAllByMember(memberID, limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("no se pudieron listar los análisis", err)
	}
	return toResponses(models), nil
}

func (s *Service) Create(ctx context.Context, dto CreateAnalysisDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetEntry(dto.EntryID); err != nil {
		return nil, internal.NewFieldValidationError(map[string]string{
			"entry_id": "la entrada indicada no existe",
		})
	}

	if taken, err := s.repo.ExistsForEntry(dto.EntryID); err != nil {
		return nil, internal.NewInternalError("no se pudo comprobar la entrada", err)
	} else if taken {
		return nil, internal.NewFieldValidationError(map[string]string{
			"entry_id": "la entrada ya tiene un análisis",
		})
	}

	analysisDate, _ := time.Parse(DateLayout, dto.AnalysisDate)
	model := &analysisDatamodel.Analysis{
		AnalysisDate: analysisDate,
		Acidity:      dto.Acidity,
		Humidity:     dto.Humidity,
		Yield:        dto.Yield,
		EntryID:      dto.EntryID,
		EmployeeID:   dto.EmployeeID,
		OilID:        dto.OilID,
		OilQuantity:  dto.OilQuantity,
	}

	if err := s.repo.Create(model, dto.Completes()); err != nil {
		s.logger.Error("failed to create analysis", "entry_id", dto.EntryID, "error", err)
		return nil, internal.NewInternalError("no se pudo crear el análisis", err)
	}
	s.logger.Info("analysis created", "analysis_id", model.ID, "entry_id", model.EntryID, "completed", dto.Completes())

	if dto.Completes() {
		s.publishCompleted(ctx, model)
	}

	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Get(id int64) (*Response, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrAnalysisNotFound
	}
	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, dto UpdateAnalysisDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrAnalysisNotFound
	}

	alreadyComplete := model.OilID != nil && model.OilQuantity != nil
	completesNow := !alreadyComplete && dto.Completes()

	if dto.AnalysisDate != nil {
		analysisDate, _ := time.Parse(DateLayout, *dto.AnalysisDate)
		model.AnalysisDate = analysisDate
	}
	if dto.Acidity != nil {
		model.Acidity = *dto.Acidity
	}
	if dto.Humidity != nil {
		model.Humidity = *dto.Humidity
	}
	if dto.Yield != nil {
		model.Yield = *dto.Yield
	}
	if dto.Completes() {
		if alreadyComplete {
			return nil, internal.NewFieldValidationError(map[string]string{
				"oil_id": "el análisis ya está completado",
			})
		}
		model.OilID = dto.OilID
		model.OilQuantity = dto.OilQuantity
	}

	if err := s.repo.Update(model, completesNow); err != nil {
		s.logger.Error("failed to update analysis", "analysis_id", id, "error", err)
		return nil, internal.NewInternalError("no se pudo actualizar el análisis", err)
	}

	if completesNow {
		s.publishCompleted(ctx, model)
	}

	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrAnalysisNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete analysis", "analysis_id", id, "error", err)
		return internal.NewInternalError("no se pudo eliminar el análisis", err)
	}
	return nil
}

func (s *Service) publishCompleted(ctx context.Context, model *analysisDatamodel.Analysis) {
	email, err := s.repo.MemberEmailForEntry(model.EntryID)
	if err != nil {
		s.logger.Warn("member email lookup failed, skipping event", "entry_id", model.EntryID, "error", err)
		return
	}
	_ = s.bus.Publish(ctx, events.NewAnalysisCompletedEvent(
		model.ID, model.EntryID, email,
		model.Acidity.String(), model.Humidity.String(), model.Yield.String()))
}

func toResponses(models []*analysisDatamodel.Analysis) []Response {
	responses := make([]Response, 0, len(models))
	for _, a := range models {
		responses = append(responses, FromDataModel(a))
	}
	return responses
}
