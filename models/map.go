package models

// Map is a shared map the user has access to.
type Map struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
