package employee

import (
	"log/slog"

	"github.com/oleocontrol/oleocontrol/internal"
	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	GetAll(limit, offset int) ([]*employeeDatamodel.Employee, error)
	GetByID(id int64) (*employeeDatamodel.Employee, error)
	GetByUserID(userID int64) (*employeeDatamodel.Employee, error)
	Create(e *employeeDatamodel.Employee) error
	Update(e *employeeDatamodel.Employee) error
	Delete(id int64) error
	UserExists(userID int64) (bool, error)
	DepartmentExists(departmentID int64) (bool, error)
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
		return nil, internal.NewInternalError("no se pudieron listar los empleados", err)
	}
	responses := make([]Response, 0, len(models))
	for _, e := range models {
		responses = append(responses, FromDataModel(e))
	}
	return responses, nil
}

func (s *Service) Create(dto CreateEmployeeDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.UserExists(dto.UserID)
	if err != nil {
		return nil, internal.NewInternalError("no se pudo comprobar el usuario", err)
	}
	if !exists {
		return nil, internal.NewFieldValidationError(map[string]string{
			"user_id": "el usuario indicado no existe",
		})
	}

	if existing, err := s.repo.GetByUserID(dto.UserID); err == nil && existing != nil {
		return nil, internal.NewFieldValidationError(map[string]string{
			"user_id": "el usuario ya es empleado",
		})
	}

	if err := s.checkDepartment(dto.DepartmentID); err != nil {
		return nil, err
	}

	model := &employeeDatamodel.Employee{
		UserID:       dto.UserID,
		DepartmentID: dto.DepartmentID,
	}
	if err := s.repo.Create(model); err != nil {
		s.logger.Error("failed to create employee", "user_id", dto.UserID, "error", err)
		return nil, internal.NewInternalError("no se pudo crear el empleado", err)
	}
	s.logger.Info("employee created", "employee_id", model.ID, "department_id", model.DepartmentID)

	created, err := s.repo.GetByID(model.ID)
	if err != nil {
		return nil, internal.NewInternalError("no se pudo cargar el empleado creado", err)
	}
	resp := FromDataModel(created)
	return &resp, nil
}

func (s *Service) Get(id int64) (*Response, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound
	}
	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Update(id int64, dto UpdateEmployeeDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound
	}

	if dto.DepartmentID != nil {
		if err := s.checkDepartment(*dto.DepartmentID); err != nil {
			return nil, err
		}
		model.DepartmentID = *dto.DepartmentID
	}

	if err := s.repo.Update(model); err != nil {
		s.logger.Error("failed to update employee", "employee_id", id, "error", err)
		return nil, internal.NewInternalError("no se pudo actualizar el empleado", err)
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("no se pudo cargar el empleado actualizado", err)
	}
	resp := FromDataModel(updated)
	return &resp, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrEmployeeNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "employee_id", id, "error", err)
		return internal.NewInternalError("no se pudo eliminar el empleado", err)
	}
	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}

func (s *Service) checkDepartment(departmentID int64) *internal.AppError {
	exists, err := s.repo.DepartmentExists(departmentID)
	if err != nil {
		return internal.NewInternalError("no se pudo comprobar el departamento", err)
	}
	if !exists {
		return internal.NewFieldValidationError(map[string]string{
			"department_id": "el departamento indicado no existe",
		})
	}
	return nil
}
