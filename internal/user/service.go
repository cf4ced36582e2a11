package user

import (
	"context"
	"log/slog"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/core/common/validation"
	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
	"github.com/oleocontrol/oleocontrol/internal/core/events"
)

type RepositoryAPI interface {
	GetAll(limit, offset int) ([]*userDatamodel.User, error)
	GetByID(id int64) (*userDatamodel.User, error)
	Create(u *userDatamodel.User, roleNames []string) error
	Update(u *userDatamodel.User, roleNames []string) error
	Delete(id int64) error
	ExistsUsername(username string, excludeID int64) (bool, error)
	ExistsEmail(email string, excludeID int64) (bool, error)
	ExistsDNI(dni string, excludeID int64) (bool, error)
	GetMemberRef(userID int64) (*MemberRef, error)
	GetEmployeeRef(userID int64) (*EmployeeRef, error)
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo   RepositoryAPI
	hasher PasswordHasher
	bus    EventPublisher
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, hasher PasswordHasher, bus EventPublisher, logger *slog.Logger) *Service {
	return &Service{repo: repo, hasher: hasher, bus: bus, logger: logger}
}

func (s *Service) List(limit, offset int) ([]Response, error) {
	models, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("no se pudieron listar los usuarios", err)
	}
	responses := make([]Response, 0, len(models))
	for _, m := range models {
		resp, err := s.toResponse(m)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *Service) Create(ctx context.Context, dto CreateUserDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(dto.Username, dto.Email, dto.DNI, 0); err != nil {
		return nil, err
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("no se pudo procesar la contraseña", err)
	}

	roles := dto.Roles
	if len(roles) == 0 {
		roles = []string{userDatamodel.RoleGuest}
	}

	model := &userDatamodel.User{
		Username:       dto.Username,
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		DNI:            validation.NormalizeDNI(dto.DNI),
		Email:          dto.Email,
		PasswordHash:   hash,
		Phone:          dto.Phone,
		IsActive:       true,
		ProfilePicture: dto.ProfilePicture,
	}

	if err := s.repo.Create(model, roles); err != nil {
		s.logger.Error("failed to create user", "username", dto.Username, "error", err)
		return nil, internal.NewInternalError("no se pudo crear el usuario", err)
	}

	s.logger.Info("user created", "user_id", model.ID, "username", model.Username)
	_ = s.bus.Publish(ctx, events.NewUserCreatedEvent(model.ID, model.Email, model.FirstName))

	resp, err := s.toResponse(model)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *Service) Get(id int64) (*Response, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}
	resp, err := s.toResponse(model)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *Service) Update(id int64, dto UpdateUserDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	username := model.Username
	email := model.Email
	dni := model.DNI
	if dto.Username != nil {
		username = *dto.Username
	}
	if dto.Email != nil {
		email = *dto.Email
	}
	if dto.DNI != nil {
		dni = validation.NormalizeDNI(*dto.DNI)
	}
	if err := s.checkUniqueness(username, email, dni, id); err != nil {
		return nil, err
	}

	model.Username = username
	model.Email = email
	model.DNI = dni
	if dto.FirstName != nil {
		model.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		model.LastName = *dto.LastName
	}
	if dto.Phone != nil {
		model.Phone = *dto.Phone
	}
	if dto.IsActive != nil {
		model.IsActive = *dto.IsActive
	}
	if dto.ProfilePicture != nil {
		model.ProfilePicture = dto.ProfilePicture
	}
	if dto.Password != nil {
		hash, err := s.hasher.HashPassword(*dto.Password)
		if err != nil {
			return nil, internal.NewInternalError("no se pudo procesar la contraseña", err)
		}
		model.PasswordHash = hash
	}

	if err := s.repo.Update(model, dto.Roles); err != nil {
		s.logger.Error("failed to update user", "user_id", id, "error", err)
		return nil, internal.NewInternalError("no se pudo actualizar el usuario", err)
	}

	resp, err := s.toResponse(model)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrUserNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "user_id", id, "error", err)
		return internal.NewInternalError("no se pudo eliminar el usuario", err)
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// checkUniqueness surfaces duplicate username/email/dni as field-level
// validation errors rather than raw constraint violations.
func (s *Service) checkUniqueness(username, email, dni string, excludeID int64) *internal.AppError {
	fields := make(map[string]string)

	if taken, err := s.repo.ExistsUsername(username, excludeID); err == nil && taken {
		fields["username"] = "el nombre de usuario ya está en uso"
	}
	if taken, err := s.repo.ExistsEmail(email, excludeID); err == nil && taken {
		fields["email"] = "el correo electrónico ya está en uso"
	}
	if taken, err := s.repo.ExistsDNI(validation.NormalizeDNI(dni), excludeID); err == nil && taken {
		fields["dni"] = "el DNI ya está registrado"
	}

	if len(fields) > 0 {
		return internal.NewFieldValidationError(fields)
	}
	return nil
}

func (s *Service) toResponse(model *userDatamodel.User) (Response, error) {
	u := FromDataModel(model)

	memberRef, err := s.repo.GetMemberRef(model.ID)
	if err != nil {
		return Response{}, internal.NewInternalError("no se pudo cargar el socio del usuario", err)
	}
	employeeRef, err := s.repo.GetEmployeeRef(model.ID)
	if err != nil {
		return Response{}, internal.NewInternalError("no se pudo cargar el empleado del usuario", err)
	}

	return u.ToResponse(memberRef, employeeRef), nil
}
