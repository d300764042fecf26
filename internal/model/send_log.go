// internal/model/send_log.go
package model

import "time"

const (
	SendStatusPending = "pending"
	SendStatusSent    = "sent"
	SendStatusFailed  = "failed"
)

// SendLog records one attempted message delivery to one customer. Rows are
// append-only: the status is set once at creation and never transitioned,
// and MessageText captures the rendered text at send time so later template
// edits do not rewrite history. CustomerID is a weak reference; the customer
// may be deleted afterwards and reports must still count the log.
type SendLog struct {
	ID          string      `db:"id" json:"id"`
	CustomerID  int         `db:"customer_id" json:"customerId"`
	ServiceType ServiceType `db:"service_type" json:"serviceType"`
	MessageText string      `db:"message_text" json:"messageText"`
	Status      string      `db:"status" json:"status"`
	SentAt      time.Time   `db:"sent_at" json:"sentAt"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}
