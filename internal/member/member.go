package member

import (
	"time"

	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
)

// UserRef is the owning user sub-object of a member response.
type UserRef struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DNI       string `json:"dni"`
	Email     string `json:"email"`
}

type Response struct {
	ID           int64     `json:"id"`
	MemberNumber int       `json:"member_number"`
	UserID       int64     `json:"user_id"`
	User         *UserRef  `json:"user,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromDataModel(m *memberDatamodel.Member) Response {
	resp := Response{
		ID:           m.ID,
		MemberNumber: m.MemberNumber,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.User != nil {
		resp.User = &UserRef{
			ID:        m.User.ID,
			Username:  m.User.Username,
			FirstName: m.User.FirstName,
			LastName:  m.User.LastName,
			DNI:       m.User.DNI,
			Email:     m.User.Email,
		}
	}
	return resp
}
