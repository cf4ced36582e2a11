package member

import (
	"log/slog"

	"github.com/oleocontrol/oleocontrol/internal"
	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
)

type RepositoryAPI interface {
	GetAll(limit, offset int) ([]*memberDatamodel.Member, error)
	GetByID(id int64) (*memberDatamodel.Member, error)
	GetByUserID(userID int64) (*memberDatamodel.Member, error)
	Create(m *memberDatamodel.Member) error
	Update(m *memberDatamodel.Member) error
	Delete(id int64) error
	UserExists(userID int64) (bool, error)
	ExistsMemberNumber(number int, excludeID int64) (bool, error)
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
		return nil, internal.NewInternalError("no se pudieron listar los socios", err)
	}
	responses := make([]Response, 0, len(models))
	for _, m := range models {
		responses = append(responses, FromDataModel(m))
	}
	return responses, nil
}

func (s *Service) Create(dto CreateMemberDTO) (*Response, error) {
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
			"user_id": "el usuario ya es socio",
		})
	}

	if taken, err := s.repo.ExistsMemberNumber(dto.MemberNumber, 0); err == nil && taken {
		return nil, internal.NewFieldValidationError(map[string]string{
			"member_number": "el número de socio ya está en uso",
		})
	}

	model := &memberDatamodel.Member{
		UserID:       dto.UserID,
		MemberNumber: dto.MemberNumber,
	}
	if err := s.repo.Create(model); err != nil {
		s.logger.Error("failed to create member", "user_id", dto.UserID, "error", err)
		return nil, internal.NewInternalError("no se pudo crear el socio", err)
	}
	s.logger.Info("member created", "member_id", model.ID, "member_number", model.MemberNumber)

	created, err := s.repo.GetByID(model.ID)
	if err != nil {
		return nil, internal.NewInternalError("no se pudo cargar el socio creado", err)
	}
	resp := FromDataModel(created)
	return &resp, nil
}

func (s *Service) Get(id int64) (*Response, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrMemberNotFound
	}
	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Update(id int64, dto UpdateMemberDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrMemberNotFound
	}

	if dto.MemberNumber != nil {
		if taken, err := s.repo.ExistsMemberNumber(*dto.MemberNumber, id); err == nil && taken {
			return nil, internal.NewFieldValidationError(map[string]string{
				"member_number": "el número de socio ya está en uso",
			})
		}
		model.MemberNumber = *dto.MemberNumber
	}

	if err := s.repo.Update(model); err != nil {
		s.logger.Error("failed to update member", "member_id", id, "error", err)
		return nil, internal.NewInternalError("no se pudo actualizar el socio", err)
	}

	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrMemberNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete member", "member_id", id, "error", err)
		return internal.NewInternalError("no se pudo eliminar el socio", err)
	}
	s.logger.Info("member deleted", "member_id", id)
	return nil
}
