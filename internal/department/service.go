package department

import (
	"log/slog"

	"github.com/oleocontrol/oleocontrol/internal"
	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	GetAll() ([]*employeeDatamodel.Department, error)
	GetByID(id int64) (*employeeDatamodel.Department, error)
	Create(d *employeeDatamodel.Department) error
	Update(d *employeeDatamodel.Department) error
	Delete(id int64) error
	ExistsName(name string, excludeID int64) (bool, error)
	HasEmployees(id int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List() ([]Response, error) {
	models, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("no se pudieron listar los departamentos", err)
	}
	responses := make([]Response, 0, len(models))
	for _, d := range models {
		responses = append(responses, FromDataModel(d))
	}
	return responses, nil
}

func (s *Service) Create(dto DepartmentDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if taken, err := s.repo.ExistsName(dto.Name, 0); err == nil && taken {
		return nil, internal.NewFieldValidationError(map[string]string{
			"name": "el nombre de departamento ya está en uso",
		})
	}

	model := &employeeDatamodel.Department{Name: dto.Name}
	if err := s.repo.Create(model); err != nil {
		s.logger.Error("failed to create department", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("no se pudo crear el departamento", err)
	}
	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Get(id int64) (*Response, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrDepartmentNotFound
	}
	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Update(id int64, dto DepartmentDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrDepartmentNotFound
	}

	if taken, err := s.repo.ExistsName(dto.Name, id); err == nil && taken {
		return nil, internal.NewFieldValidationError(map[string]string{
			"name": "el nombre de departamento ya está en uso",
		})
	}

	model.Name = dto.Name
	if err := s.repo.Update(model); err != nil {
		s.logger.Error("failed to update department", "department_id", id, "error", err)
		return nil, internal.NewInternalError("no se pudo actualizar el departamento", err)
	}
	resp := FromDataModel(model)
	return &resp, nil
}

// Delete refuses to remove a department that still has employees assigned.
func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrDepartmentNotFound
	}
	if occupied, err := s.repo.HasEmployees(id); err == nil && occupied {
		return internal.NewFieldValidationError(map[string]string{
			"department": "el departamento tiene empleados asignados",
		})
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete department", "department_id", id, "error", err)
		return internal.NewInternalError("no se pudo eliminar el departamento", err)
	}
	return nil
}
