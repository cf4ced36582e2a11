package postgres

import (
	"gorm.io/gorm"

	inventoryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/inventory"
	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetInventoriesByMember(memberID int64, limit, offset int) ([]*inventoryDatamodel.OilInventory, error) {
	var rows []*inventoryDatamodel.OilInventory
	err := r.db.Where("member_id = ?", memberID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, err
}

func (r *Repository) GetOilSettlementsByMember(memberID int64, limit, offset int) ([]*inventoryDatamodel.OilSettlement, error) {
	var rows []*inventoryDatamodel.OilSettlement
	err := r.db.Where("member_id = ?", memberID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, err
}

func (r *Repository) GetInventoriesForSummary(memberID int64) ([]*inventoryDatamodel.OilInventory, error) {
	var rows []*inventoryDatamodel.OilInventory
	err := r.db.Preload("Oil").
		Where("member_id = ?", memberID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *Repository) GetOilSettlementsForSummary(memberID int64) ([]*inventoryDatamodel.OilSettlement, error) {
	var rows []*inventoryDatamodel.OilSettlement
	err := r.db.Preload("Oil").
		Where("member_id = ?", memberID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *Repository) MemberExists(memberID int64) (bool, error) {
	var count int64
	err := r.db.Model(&memberDatamodel.Member{}).Where("id = ?", memberID).Count(&count).Error
	return count > 0, err
}
