package domain

import "time"

type NotificationType string

const (
	NotificationTypeWallet NotificationType = "wallet"
	NotificationTypeOrder  NotificationType = "order"
)

type Notification struct {
	ID           string
	UserID       string
	Title        string
	Message      string
	Type         NotificationType
	Link         string
	IsRead       bool
	CreatedAt    time.Time
	DispatchedAt *time.Time
	Attempts     int
	LastError    string
}
