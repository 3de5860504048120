package social

import (
	"errors"
	"testing"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/jacobhenn/unistellar/internal/domain/id"
)

const (
	userULID  = "01J7YZ7MC8V00000000000AMYN"
	uniULID   = "01J7YZ7MC3P44547KT11KHXGJV"
	majorULID = "01J7YZ7MC5M000000000000CSE"
)

func TestUserRow_ToDomain(t *testing.T) {
	row := userRow{
		ID:         models.RecordID{Table: "user", ID: userULID},
		Name:       nameRow{First: "Amy", Last: "Nguyen"},
		Username:   "choobipanda",
		University: models.RecordID{Table: "university", ID: uniULID},
		Major:      models.RecordID{Table: "major", ID: majorULID},
		GradYear:   2027,
	}

	u, err := row.toDomain()
	if err != nil {
		t.Fatalf("toDomain: %v", err)
	}
	if u.ID.String() != userULID {
		t.Errorf("id = %q, want %q", u.ID.String(), userULID)
	}
	if u.Name.First != "Amy" || u.Name.Last != "Nguyen" {
		t.Errorf("name = %+v", u.Name)
	}
	if u.University.String() != uniULID {
		t.Errorf("university = %q, want %q", u.University.String(), uniULID)
	}
	if u.GradYear != 2027 {
		t.Errorf("grad year = %d, want 2027", u.GradYear)
	}
}

func TestUserRow_ToDomain_MalformedID(t *testing.T) {
	row := userRow{
		ID:         models.RecordID{Table: "user", ID: 42},
		University: models.RecordID{Table: "university", ID: uniULID},
		Major:      models.RecordID{Table: "major", ID: majorULID},
	}

	if _, err := row.toDomain(); !errors.Is(err, id.ErrMalformed) {
		t.Fatalf("error = %v, want ErrMalformed", err)
	}
}

func TestIdsFromRecords(t *testing.T) {
	rows := []models.RecordID{
		{Table: "user", ID: userULID},
		{Table: "user", ID: uniULID},
	}

	ids, err := idsFromRecords(rows)
	if err != nil {
		t.Fatalf("idsFromRecords: %v", err)
	}
	if len(ids) != 2 || ids[0].String() != userULID || ids[1].String() != uniULID {
		t.Errorf("ids = %v", ids)
	}
}

func TestIdsFromRecords_MalformedAborts(t *testing.T) {
	rows := []models.RecordID{
		{Table: "user", ID: userULID},
		{Table: "user", ID: "not-a-ulid"},
	}

	if _, err := idsFromRecords(rows); !errors.Is(err, id.ErrMalformed) {
		t.Fatalf("error = %v, want ErrMalformed", err)
	}
}
