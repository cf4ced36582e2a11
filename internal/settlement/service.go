package settlement

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oleocontrol/oleocontrol/internal"
	settlementDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/settlement"
	"github.com/oleocontrol/oleocontrol/internal/core/events"
)

type RepositoryAPI interface {
	GetAll(limit, offset int) ([]*settlementDatamodel.Settlement, error)
	GetAllByMember(memberID int64, limit, offset int) ([]*settlementDatamodel.Settlement, error)
	GetByID(id int64) (*settlementDatamodel.Settlement, error)
	Create(s *settlementDatamodel.Settlement) error
	Update(s *settlementDatamodel.Settlement) error
	// Accept saves the resolved settlement, debits the member's oil
	// inventory and records the oil settlement in one transaction.
	Accept(s *settlementDatamodel.Settlement) error
	Delete(id int64) error
	MemberExists(memberID int64) (bool, error)
	OilExists(oilID int64) (bool, error)
	MemberOilStock(memberID, oilID int64) (decimal.Decimal, error)
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
		return nil, internal.NewInternalError("no se pudieron listar las liquidaciones", err)
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
		return nil, internal.NewInternalError("no se pudieron listar las liquidaciones", err)
	}
	return toResponses(models), nil
}

func (s *Service) Create(dto CreateSettlementDTO) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if exists, err := s.repo.MemberExists(dto.MemberID); err != nil {
		return nil, internal.NewInternalError("no se pudo comprobar el socio", err)
	} else if !exists {
		return nil, internal.NewFieldValidationError(map[string]string{
			"member_id": "el socio indicado no existe",
		})
	}
	if exists, err := s.repo.OilExists(dto.OilID); err != nil {
		return nil, internal.NewInternalError("no se pudo comprobar el aceite", err)
	} else if !exists {
		return nil, internal.NewFieldValidationError(map[string]string{
			"oil_id": "el aceite indicado no existe",
		})
	}

	settlementDate, _ := time.Parse(DateLayout, dto.SettlementDate)
	model := &settlementDatamodel.Settlement{
		SettlementDate:   settlementDate,
		Amount:           dto.Amount,
		Price:            dto.Price,
		SettlementStatus: settlementDatamodel.StatusPending,
		MemberID:         dto.MemberID,
		OilID:            dto.OilID,
	}
	if err := s.repo.Create(model); err != nil {
		s.logger.Error("failed to create settlement", "member_id", dto.MemberID, "error", err)
		return nil, internal.NewInternalError("no se pudo crear la liquidación", err)
	}
	s.logger.Info("settlement created", "settlement_id", model.ID, "member_id", model.MemberID)

	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Get(id int64) (*Response, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrSettlementNotFound
	}
	resp := FromDataModel(model)
	return &resp, nil
}

// Update amends a pending settlement. A status change to Accepted or
// Cancelled resolves it: settlement_date_res is stamped, the resolving
// employee recorded, and on acceptance the oil stock moves.
func (s *Service) Update(ctx context.Context, id int64, dto UpdateSettlementDTO, employeeID *int64) (*Response, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	model, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrSettlementNotFound
	}

	if model.SettlementStatus != settlementDatamodel.StatusPending {
		return nil, internal.NewFieldValidationError(map[string]string{
			"settlement_status": "la liquidación ya está resuelta",
		})
	}

	if dto.SettlementDate != nil {
		settlementDate, _ := time.Parse(DateLayout, *dto.SettlementDate)
		model.SettlementDate = settlementDate
	}
	if dto.Amount != nil {
		model.Amount = *dto.Amount
	}
	if dto.Price != nil {
		model.Price = *dto.Price
	}

	resolving := dto.SettlementStatus != nil && *dto.SettlementStatus != settlementDatamodel.StatusPending
	if !resolving {
		if err := s.repo.Update(model); err != nil {
			s.logger.Error("failed to update settlement", "settlement_id", id, "error", err)
			return nil, internal.NewInternalError("no se pudo actualizar la liquidación", err)
		}
		resp := FromDataModel(model)
		return &resp, nil
	}

	model.SettlementStatus = *dto.SettlementStatus
	now := time.Now()
	model.SettlementDateRes = &now
	model.EmployeeID = employeeID

	if model.SettlementStatus == settlementDatamodel.StatusAccepted {
		stock, err := s.repo.MemberOilStock(model.MemberID, model.OilID)
		if err != nil {
			return nil, internal.NewInternalError("no se pudo comprobar el inventario", err)
		}
		if stock.LessThan(model.Amount) {
			return nil, internal.NewFieldValidationError(map[string]string{
				"amount": "el socio no tiene suficiente aceite en inventario",
			})
		}
		if err := s.repo.Accept(model); err != nil {
			s.logger.Error("failed to accept settlement", "settlement_id", id, "error", err)
			return nil, internal.NewInternalError("no se pudo aceptar la liquidación", err)
		}
	} else {
		if err := s.repo.Update(model); err != nil {
			s.logger.Error("failed to cancel settlement", "settlement_id", id, "error", err)
			return nil, internal.NewInternalError("no se pudo resolver la liquidación", err)
		}
	}
	s.logger.Info("settlement resolved", "settlement_id", model.ID, "status", model.SettlementStatus)

	if email, err := s.repo.MemberEmail(model.MemberID); err != nil {
		s.logger.Warn("member email lookup failed, skipping event", "member_id", model.MemberID, "error", err)
	} else {
		_ = s.bus.Publish(ctx, events.NewSettlementResolvedEvent(
			model.ID, model.MemberID, email, model.SettlementStatus,
			model.Amount.String(), model.Price.String()))
	}

	resp := FromDataModel(model)
	return &resp, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrSettlementNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete settlement", "settlement_id", id, "error", err)
		return internal.NewInternalError("no se pudo eliminar la liquidación", err)
	}
	return nil
}

func toResponses(models []*settlementDatamodel.Settlement) []Response {
	responses := make([]Response, 0, len(models))
	for _, m := range models {
		responses = append(responses, FromDataModel(m))
	}
	return responses
}
