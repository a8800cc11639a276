package domain

import "time"

type Contact struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	JobTitle  *string   `json:"job_title"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}
