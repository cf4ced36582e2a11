package postgres

import (
	"gorm.io/gorm"

	analysisDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/analysis"
	entryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/entry"
	inventoryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/inventory"
	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(limit, offset int) ([]*analysisDatamodel.Analysis, error) {
	var analyses []*analysisDatamodel.Analysis
	err := r.db.Order("id ASC").Limit(limit).Offset(offset).Find(&analyses).Error
	return analyses, err
}

func (r *Repository) GetAllByEmployee(employeeID int64, limit, offset int) ([]*analysisDatamodel.Analysis, error) {
	var analyses []*analysisDatamodel.Analysis
	err := r.db.Where("employee_id = ?", employeeID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&analyses).Error
	return analyses, err
}

func (r *Repository) GetAllByMember(memberID int64, limit, offset int) ([]*analysisDatamodel.Analysis, error) {
	var analyses []*analysisDatamodel.Analysis
	err := r.db.
		Joins("JOIN entries ON entries.id = analyses.entry_id").
		Where("entries.member_id = ?", memberID).
		Order("analyses.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&analyses).Error
	return analyses, err
}

func (r *Repository) GetByID(id int64) (*analysisDatamodel.Analysis, error) {
	var a analysisDatamodel.Analysis
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) GetEntry(entryID int64) (*entryDatamodel.Entry, error) {
	var e entryDatamodel.Entry
	if err := r.db.First(&e, entryID).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) ExistsForEntry(entryID int64) (bool, error) {
	var count int64
	err := r.db.Model(&analysisDatamodel.Analysis{}).Where("entry_id = ?", entryID).Count(&count).Error
	return count > 0, err
}

func (r *Repository) Create(a *analysisDatamodel.Analysis, complete bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		if !complete {
			return nil
		}
		return applyCompletion(tx, a)
	})
}

func (r *Repository) Update(a *analysisDatamodel.Analysis, complete bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Entry", "Employee", "Oil").Save(a).Error; err != nil {
			return err
		}
		if !complete {
			return nil
		}
		return applyCompletion(tx, a)
	})
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&analysisDatamodel.Analysis{}, id).Error
}

func (r *Repository) MemberEmailForEntry(entryID int64) (string, error) {
	var e entryDatamodel.Entry
	if err := r.db.First(&e, entryID).Error; err != nil {
		return "", err
	}
	var m memberDatamodel.Member
	if err := r.db.First(&m, e.MemberID).Error; err != nil {
		return "", err
	}
	var u userDatamodel.User
	if err := r.db.First(&u, m.UserID).Error; err != nil {
		return "", err
	}
	return u.Email, nil
}

// applyCompletion marks the entry complete, copies the resulting oil
// quantity onto it and credits the member's oil inventory.
func applyCompletion(tx *gorm.DB, a *analysisDatamodel.Analysis) error {
	var e entryDatamodel.Entry
	if err := tx.First(&e, a.EntryID).Error; err != nil {
		return err
	}

	e.AnalysisStatus = entryDatamodel.AnalysisStatusComplete
	e.OilQuantity = a.OilQuantity
	if err := tx.Omit("Member").Save(&e).Error; err != nil {
		return err
	}

	credit := &inventoryDatamodel.OilInventory{
		Quantity: *a.OilQuantity,
		MemberID: e.MemberID,
		OilID:    *a.OilID,
	}
	return tx.Create(credit).Error
}
