package member

import (
	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/core/common/validation"
)

type CreateMemberDTO struct {
	UserID       int64 `json:"user_id"`
	MemberNumber int   `json:"member_number"`
}

func (d CreateMemberDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("user_id", d.UserID).Custom(func(interface{}) string {
		if d.UserID <= 0 {
			return "el campo user_id es obligatorio"
		}
		return ""
	})
	v.Field("member_number", d.MemberNumber).Custom(func(interface{}) string {
		if d.MemberNumber <= 0 {
			return "el campo member_number debe ser un número positivo"
		}
		return ""
	})
	return v.Validate()
}

type UpdateMemberDTO struct {
	MemberNumber *int `json:"member_number"`
}

func (d UpdateMemberDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if d.MemberNumber != nil {
		v.Field("member_number", *d.MemberNumber).Custom(func(interface{}) string {
			if *d.MemberNumber <= 0 {
				return "el campo member_number debe ser un número positivo"
			}
			return ""
		})
	}
	return v.Validate()
}
