package events

// Event types published by the write operations. All of them fire after the
// database commit; consumers live in internal/notifier.
const (
	EventUserCreated        = "user.created"
	EventEntryCreated       = "entry.created"
	EventAnalysisCompleted  = "analysis.completed"
	EventSettlementResolved = "settlement.resolved"
	EventNotificationSent   = "notification.sent"
)

func NewUserCreatedEvent(userID int64, email, firstName string) BaseEvent {
	return NewBaseEvent(EventUserCreated, map[string]interface{}{
		"user_id":    userID,
		"email":      email,
		"first_name": firstName,
	})
}

func NewEntryCreatedEvent(entryID, memberID int64, email, oliveQuantity string) BaseEvent {
	return NewBaseEvent(EventEntryCreated, map[string]interface{}{
		"entry_id":       entryID,
		"member_id":      memberID,
		"email":          email,
		"olive_quantity": oliveQuantity,
	})
}

func NewAnalysisCompletedEvent(analysisID, entryID int64, email string, acidity, humidity, yield string) BaseEvent {
	return NewBaseEvent(EventAnalysisCompleted, map[string]interface{}{
		"analysis_id": analysisID,
		"entry_id":    entryID,
		"email":       email,
		"acidity":     acidity,
		"humidity":    humidity,
		"yield":       yield,
	})
}

func NewSettlementResolvedEvent(settlementID, memberID int64, email, status, amount, price string) BaseEvent {
	return NewBaseEvent(EventSettlementResolved, map[string]interface{}{
		"settlement_id": settlementID,
		"member_id":     memberID,
		"email":         email,
		"status":        status,
		"amount":        amount,
		"price":         price,
	})
}

func NewNotificationSentEvent(notificationID, senderID, receiverID int64, message string) BaseEvent {
	return NewBaseEvent(EventNotificationSent, map[string]interface{}{
		"notification_id": notificationID,
		"sender_id":       senderID,
		"receiver_id":     receiverID,
		"message":         message,
	})
}
