package domain

import "time"

type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
)

// Notification is created only by the access lifecycle as a side effect of a
// transition; after creation it is mutated only by the recipient (marking
// read) or by bulk delete.
type Notification struct {
	ID              int32            `json:"id"`
	UserID          int32            `json:"user_id"`
	ThesisID        *int32           `json:"thesis_id,omitempty"`
	AccessRequestID *int32           `json:"access_request_id,omitempty"`
	Title           string           `json:"title"`
	Message         string           `json:"message"`
	Type            NotificationType `json:"type"`
	IsRead          bool             `json:"is_read"`
	CreatedOn       time.Time        `json:"created_on"`
}
