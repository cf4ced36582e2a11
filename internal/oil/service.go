package oil

import (
	"log/slog"

	"github.com/oleocontrol/oleocontrol/internal"
	oilDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/oil"
)

type RepositoryAPI interface {
	GetAll(limit, offset int) ([]*oilDatamodel.Oil, error)
	GetByID(id int64) (*oilDatamodel.Oil, error)
	Create(o *oilDatamodel.Oil) error
	Update(o *oilDatamodel.Oil) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(limit, offset int) ([]Response, error) {
	models, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("no se pudieron listar los aceites", err)
	}
	responses := make([]Response, 0, len(models))
	for _, o := range models {
		responses = append(responses, FromDataModel(o))
	}
	return responses, nil
}

func (s *Service) Create(dto CreateOilDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	model := &oilDatamodel.Oil{
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		PhotoURL:    dto.PhotoURL,
	}
	if err := s.repo.Create(model); err != nil {
		s.logger.Error("failed to create oil", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("no se pudo crear el aceite", err)
	}
	s.logger.Info("oil created", "oil_id", model.ID, "name", model.Name)

	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Get(id int64) (*Response, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrOilNotFound
	}
	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Update(id int64, dto UpdateOilDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrOilNotFound
	}

	if dto.Name != nil {
		model.Name = *dto.Name
	}
	if dto.Description != nil {
		model.Description = *dto.Description
	}
	if dto.Price != nil {
		model.Price = *dto.Price
	}
	if dto.PhotoURL != nil {
		model.PhotoURL = *dto.PhotoURL
	}

	if err := s.repo.Update(model); err != nil {
		s.logger.Error("failed to update oil", "oil_id", id, "error", err)
		return nil, internal.NewInternalError("no se pudo actualizar el aceite", err)
	}

	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrOilNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete oil", "oil_id", id, "error", err)
		return internal.NewInternalError("no se pudo eliminar el aceite", err)
	}
	return nil
}
