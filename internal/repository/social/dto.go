package social

import (
	"fmt"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/jacobhenn/unistellar/internal/domain"
	"github.com/jacobhenn/unistellar/internal/domain/id"
)

// userRow is the store shape of a user record.
type userRow struct {
	ID         models.RecordID `json:"id"`
	Name       nameRow         `json:"name"`
	Username   string          `json:"username"`
	University models.RecordID `json:"university"`
	Major      models.RecordID `json:"major"`
	GradYear   int             `json:"grad_year"`
}

type nameRow struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// toDomain normalizes the row's record ids; a malformed id is a
// data-integrity fault and aborts the whole operation.
func (r userRow) toDomain() (domain.User, error) {
	uid, err := id.FromRecord(r.ID.Table, r.ID.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user id: %w", err)
	}
	uni, err := id.FromRecord(r.University.Table, r.University.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %s university id: %w", uid, err)
	}
	major, err := id.FromRecord(r.Major.Table, r.Major.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %s major id: %w", uid, err)
	}
	return domain.User{
		ID:         uid,
		Name:       domain.Name{First: r.Name.First, Last: r.Name.Last},
		Username:   r.Username,
		University: uni,
		Major:      major,
		GradYear:   r.GradYear,
	}, nil
}

// idsFromRecords normalizes a list of bare record ids.
func idsFromRecords(rows []models.RecordID) ([]id.ID, error) {
	ids := make([]id.ID, len(rows))
	for i, r := range rows {
		decoded, err := id.FromRecord(r.Table, r.ID)
		if err != nil {
			return nil, err
		}
		ids[i] = decoded
	}
	return ids, nil
}
