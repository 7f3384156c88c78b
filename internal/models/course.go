package models

import "time"

// Department groups courses under a faculty unit.
type Department struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Course represents a catalog course identified by a unique code.
type Course struct {
	ID           string    `db:"id" json:"id"`
	DepartmentID string    `db:"department_id" json:"department_id"`
	Code         string    `db:"code" json:"code"`
	Title        string    `db:"title" json:"title"`
	Credit       float64   `db:"credit" json:"credit"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
