package dto

import "time"

type NotificationOutput struct {
	ID        string
	Title     string
	Message   string
	Kind      string
	Read      bool
	CreatedAt time.Time
}

type ListOutput struct {
	Items  []NotificationOutput
	Unread int
}
