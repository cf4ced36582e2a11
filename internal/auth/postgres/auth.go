package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/oleocontrol/oleocontrol/internal/auth"
	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetCredentials(username string) (int64, string, bool, error) {
	var u userDatamodel.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", false, errors.New("user not found")
		}
		return 0, "", false, err
	}
	return u.ID, u.PasswordHash, u.IsActive, nil
}

// GetActor loads the user, their role set and their member/employee
// attachments in one pass. Unknown role names in the database are skipped.
func (r *Repository) GetActor(userID int64) (*auth.Actor, error) {
	var u userDatamodel.User
	err := r.db.Preload("Roles").Where("id = ? AND is_active = true", userID).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	actor := &auth.Actor{
		UserID:    u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}

	for _, role := range u.Roles {
		if parsed, ok := auth.ParseRole(role.Name); ok {
			actor.Roles = append(actor.Roles, parsed)
		}
	}

	var m memberDatamodel.Member
	if err := r.db.Where("user_id = ?", userID).First(&m).Error; err == nil {
		actor.MemberID = &m.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var e employeeDatamodel.Employee
	if err := r.db.Preload("Department").Where("user_id = ?", userID).First(&e).Error; err == nil {
		actor.EmployeeID = &e.ID
		if e.Department != nil {
			actor.Department = e.Department.Name
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return actor, nil
}
