package catalog

import (
	"fmt"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/jacobhenn/unistellar/internal/domain"
	"github.com/jacobhenn/unistellar/internal/domain/id"
)

// namedRow covers tables that are just an id and a name.
type namedRow struct {
	ID   models.RecordID `json:"id"`
	Name string          `json:"name"`
}

func (r namedRow) recordID() (id.ID, error) {
	rid, err := id.FromRecord(r.ID.Table, r.ID.ID)
	if err != nil {
		return id.ID{}, fmt.Errorf("%s id: %w", r.ID.Table, err)
	}
	return rid, nil
}

type courseRow struct {
	ID   models.RecordID `json:"id"`
	Name string          `json:"name"`
	Code string          `json:"code"`
}

func (r courseRow) toDomain() (domain.Course, error) {
	rid, err := id.FromRecord(r.ID.Table, r.ID.ID)
	if err != nil {
		return domain.Course{}, fmt.Errorf("course id: %w", err)
	}
	return domain.Course{ID: rid, Name: r.Name, Code: r.Code}, nil
}

type assignmentRow struct {
	ID     models.RecordID `json:"id"`
	Course models.RecordID `json:"course"`
	Name   string          `json:"name"`
}

func (r assignmentRow) toDomain() (domain.Assignment, error) {
	rid, err := id.FromRecord(r.ID.Table, r.ID.ID)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("assignment id: %w", err)
	}
	cid, err := id.FromRecord(r.Course.Table, r.Course.ID)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("assignment %s course id: %w", rid, err)
	}
	return domain.Assignment{ID: rid, Course: cid, Name: r.Name}, nil
}
