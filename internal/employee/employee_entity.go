package employee

import "time"

type Employee struct {
	ID         string
	FullName   string
	Department string
	CreatedAt  time.Time
}
