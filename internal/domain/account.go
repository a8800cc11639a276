package domain

import "time"

type Account struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Website     *string   `json:"website"`
	Industry    *string   `json:"industry"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
