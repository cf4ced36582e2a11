package postgres

import (
	"errors"

	"gorm.io/gorm"

	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
	"github.com/oleocontrol/oleocontrol/internal/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(limit, offset int) ([]*userDatamodel.User, error) {
	var users []*userDatamodel.User
	err := r.db.Preload("Roles").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

func (r *Repository) GetByID(id int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	if err := r.db.Preload("Roles").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persists the user and attaches the named roles. Role rows are
// looked up, never created, so an unseeded database fails loudly here.
func (r *Repository) Create(u *userDatamodel.User, roleNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		roles, err := findRoles(tx, roleNames)
		if err != nil {
			return err
		}
		u.Roles = roles
		return tx.Create(u).Error
	})
}

// Update saves the user fields and, when roleNames is non-nil, replaces the
// role set wholesale.
func (r *Repository) Update(u *userDatamodel.User, roleNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles").Save(u).Error; err != nil {
			return err
		}
		if roleNames == nil {
			return nil
		}
		roles, err := findRoles(tx, roleNames)
		if err != nil {
			return err
		}
		return tx.Model(u).Association("Roles").Replace(roles)
	})
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&userDatamodel.User{}, id).Error
}

func (r *Repository) ExistsUsername(username string, excludeID int64) (bool, error) {
	return r.exists("username = ?", username, excludeID)
}

func (r *Repository) ExistsEmail(email string, excludeID int64) (bool, error) {
	return r.exists("email = ?", email, excludeID)
}

func (r *Repository) ExistsDNI(dni string, excludeID int64) (bool, error) {
	return r.exists("dni = ?", dni, excludeID)
}

func (r *Repository) exists(query string, value string, excludeID int64) (bool, error) {
	var count int64
	tx := r.db.Model(&userDatamodel.User{}).Where(query, value)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) GetMemberRef(userID int64) (*user.MemberRef, error) {
	var m memberDatamodel.Member
	err := r.db.Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user.MemberRef{ID: m.ID, MemberNumber: m.MemberNumber}, nil
}

func (r *Repository) GetEmployeeRef(userID int64) (*user.EmployeeRef, error) {
	var e employeeDatamodel.Employee
	err := r.db.Preload("Department").Where("user_id = ?", userID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	ref := &user.EmployeeRef{ID: e.ID}
	if e.Department != nil {
		ref.Department = e.Department.Name
	}
	return ref, nil
}

func findRoles(tx *gorm.DB, names []string) ([]userDatamodel.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var roles []userDatamodel.Role
	if err := tx.Where("name IN ?", names).Find(&roles).Error; err != nil {
		return nil, err
	}
	if len(roles) != len(names) {
		return nil, errors.New("unknown role name")
	}
	return roles, nil
}
