package domain

import "github.com/jacobhenn/unistellar/internal/domain/id"

// Name is a user's display name.
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// User is an individual account.
type User struct {
	ID         id.ID  `json:"id"`
	Name       Name   `json:"name"`
	Username   string `json:"username"`
	University id.ID  `json:"university"`
	Major      id.ID  `json:"major"`
	GradYear   int    `json:"grad_year"`
}
