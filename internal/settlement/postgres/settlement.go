package postgres

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	inventoryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/inventory"
	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
	oilDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/oil"
	settlementDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/settlement"
	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(limit, offset int) ([]*settlementDatamodel.Settlement, error) {
	var settlements []*settlementDatamodel.Settlement
	err := r.db.Order("id ASC").Limit(limit).Offset(offset).Find(&settlements).Error
	return settlements, err
}

func (r *Repository) GetAllByMember(memberID int64, limit, offset int) ([]*settlementDatamodel.Settlement, error) {
	var settlements []*settlementDatamodel.Settlement
	err := r.db.Where("member_id = ?", memberID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&settlements).Error
	return settlements, err
}

func (r *Repository) GetByID(id int64) (*settlementDatamodel.Settlement, error) {
	var s settlementDatamodel.Settlement
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(s *settlementDatamodel.Settlement) error {
	return r.db.Create(s).Error
}

func (r *Repository) Update(s *settlementDatamodel.Settlement) error {
	return r.db.Omit("Member", "Oil", "Employee").Save(s).Error
}

// Accept persists the accepted settlement, debits the member's oil stock
// with a negative inventory movement, and records the oil settlement.
func (r *Repository) Accept(s *settlementDatamodel.Settlement) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Member", "Oil", "Employee").Save(s).Error; err != nil {
			return err
		}

		debit := &inventoryDatamodel.OilInventory{
			Quantity: s.Amount.Neg(),
			MemberID: s.MemberID,
			OilID:    s.OilID,
		}
		if err := tx.Create(debit).Error; err != nil {
			return err
		}

		oilID := s.OilID
		record := &inventoryDatamodel.OilSettlement{
			Amount:         s.Amount,
			SettlementDate: *s.SettlementDateRes,
			MemberID:       s.MemberID,
			OilID:          &oilID,
		}
		return tx.Create(record).Error
	})
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&settlementDatamodel.Settlement{}, id).Error
}

func (r *Repository) MemberExists(memberID int64) (bool, error) {
	var count int64
	err := r.db.Model(&memberDatamodel.Member{}).Where("id = ?", memberID).Count(&count).Error
	return count > 0, err
}

func (r *Repository) OilExists(oilID int64) (bool, error) {
	var count int64
	err := r.db.Model(&oilDatamodel.Oil{}).Where("id = ?", oilID).Count(&count).Error
	return count > 0, err
}

func (r *Repository) MemberOilStock(memberID, oilID int64) (decimal.Decimal, error) {
	var raw *string
	err := r.db.Model(&inventoryDatamodel.OilInventory{}).
		Select("SUM(quantity)").
		Where("member_id = ? AND oil_id = ?", memberID, oilID).
		Scan(&raw).Error
	if err != nil || raw == nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(*raw)
}

func (r *Repository) MemberEmail(memberID int64) (string, error) {
	var m memberDatamodel.Member
	if err := r.db.First(&m, memberID).Error; err != nil {
		return "", err
	}
	var u userDatamodel.User
	if err := r.db.First(&u, m.UserID).Error; err != nil {
		return "", err
	}
	return u.Email, nil
}
