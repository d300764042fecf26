// internal/model/customer.go
package model

import "time"

type Customer struct {
	ID          int         `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Phone       string      `db:"phone" json:"phone"`
	Notes       string      `db:"notes" json:"notes"`
	ServiceType ServiceType `db:"service_type" json:"serviceType"`
	ServiceDate time.Time   `db:"service_date" json:"serviceDate"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}
