package notification

import (
	"time"

	notificationDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/notification"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/core/common/validation"
)

type Response struct {
	ID         int64     `json:"id"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromDataModel(n *notificationDatamodel.Notification) Response {
	return Response{
		ID:         n.ID,
		Message:    n.Message,
		Date:       n.Date,
		SenderID:   n.SenderID,
		ReceiverID: n.ReceiverID,
		CreatedAt:  n.CreatedAt,
	}
}

type CreateNotificationDTO struct {
	Message    string `json:"message"`
	ReceiverID int64  `json:"receiver_id"`
}

func (d CreateNotificationDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("message", d.Message).Required().MaxLength(1000)
	v.Field("receiver_id", d.ReceiverID).Required()
	return v.Validate()
}
