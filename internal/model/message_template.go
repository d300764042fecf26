// internal/model/message_template.go
package model

import "time"

// MessageTemplate is the stored message text for one service type.
// Placeholders {customer_name} and {service_type} are substituted at send
// time. service_type is unique: one template per category.
type MessageTemplate struct {
	ID          int         `db:"id" json:"id"`
	ServiceType ServiceType `db:"service_type" json:"serviceType"`
	Text        string      `db:"text" json:"text"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}
