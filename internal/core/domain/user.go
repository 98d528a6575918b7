package domain

import "time"

// User is a back-office operator. Campaigns reference users as owners and
// approvers; the store refuses to delete a referenced user.
type User struct {
	ID          int64
	Username    string
	DisplayName string
	CreatedAt   time.Time
}
