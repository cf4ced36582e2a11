package inventory

import (
	"log/slog"

	"github.com/oleocontrol/oleocontrol/internal"
	inventoryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/inventory"
)

type RepositoryAPI interface {
	GetInventoriesByMember(memberID int64, limit, offset int) ([]*inventoryDatamodel.OilInventory, error)
	GetOilSettlementsByMember(memberID int64, limit, offset int) ([]*inventoryDatamodel.OilSettlement, error)
	// summary queries load every row for the member, oil preloaded,
	// ordered by id so group order is first-seen
	GetInventoriesForSummary(memberID int64) ([]*inventoryDatamodel.OilInventory, error)
	GetOilSettlementsForSummary(memberID int64) ([]*inventoryDatamodel.OilSettlement, error)
	MemberExists(memberID int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListInventories(memberID int64, limit, offset int) ([]InventoryResponse, error) {
	if err := s.checkMember(memberID); err != nil {
		return nil, err
	}
	models, err := s.repo.GetInventoriesByMember(memberID, limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("no se pudo listar el inventario", err)
	}
	responses := make([]InventoryResponse, 0, len(models))
	for _, m := range models {
		responses = append(responses, InventoryFromDataModel(m))
	}
	return responses, nil
}

func (s *Service) ListOilSettlements(memberID int64, limit, offset int) ([]OilSettlementResponse, error) {
	if err := s.checkMember(memberID); err != nil {
		return nil, err
	}
	models, err := s.repo.GetOilSettlementsByMember(memberID, limit, offset)
	if err != nil {
		return nil, internal.NewInternalError("no se pudieron listar las liquidaciones de aceite", err)
	}
	responses := make([]OilSettlementResponse, 0, len(models))
	for _, m := range models {
		responses = append(responses, OilSettlementFromDataModel(m))
	}
	return responses, nil
}

func (s *Service) InventorySummary(memberID int64) ([]InventorySummaryItem, error) {
	if err := s.checkMember(memberID); err != nil {
		return nil, err
	}
	rows, err := s.repo.GetInventoriesForSummary(memberID)
	if err != nil {
		return nil, internal.NewInternalError("no se pudo calcular el resumen de inventario", err)
	}
	return SummarizeInventories(rows), nil
}

func (s *Service) OilSettlementSummary(memberID int64) ([]SettlementSummaryItem, error) {
	if err := s.checkMember(memberID); err != nil {
		return nil, err
	}
	rows, err := s.repo.GetOilSettlementsForSummary(memberID)
	if err != nil {
		return nil, internal.NewInternalError("no se pudo calcular el resumen de liquidaciones", err)
	}
	return SummarizeOilSettlements(rows), nil
}

func (s *Service) checkMember(memberID int64) error {
	exists, err := s.repo.MemberExists(memberID)
	if err != nil {
		return internal.NewInternalError("no se pudo comprobar el socio", err)
	}
	if !exists {
		return internal.ErrMemberNotFound
	}
	return nil
}
