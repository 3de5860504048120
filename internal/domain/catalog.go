package domain

import "github.com/jacobhenn/unistellar/internal/domain/id"

// University is an institution users can attend.
type University struct {
	ID   id.ID  `json:"id"`
	Name string `json:"name"`
}

// Major is a field of study.
type Major struct {
	ID   id.ID  `json:"id"`
	Name string `json:"name"`
}

// Course is a class offering. Courses are independent of university: many
// are ubiquitous, and users should be able to match on shared courses across
// institutions.
type Course struct {
	ID   id.ID  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Assignment is a unit of work within a course.
type Assignment struct {
	ID     id.ID  `json:"id"`
	Course id.ID  `json:"course"`
	Name   string `json:"name"`
}
