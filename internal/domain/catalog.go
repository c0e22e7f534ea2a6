package domain

import "time"

// Activity is a bookable service with a fixed duration
type Activity struct {
	ID              int64
	Name            string
	Description     string
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Employee performs activities within their working times
type Employee struct {
	ID   int64
	Name string
}

// Customer books activities
type Customer struct {
	ID    int64
	Name  string
	Email string
	Phone string
}
