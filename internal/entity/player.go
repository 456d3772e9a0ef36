package entity

import (
	"database/sql"
	"time"
)

// PendingPlayer is a child enrollment awaiting admin approval.
type PendingPlayer struct {
	Id        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	PendingPlayerInsert
}

// PendingPlayerInsert either references a family or embeds the tutor fields.
type PendingPlayerInsert struct {
	FamilyId    sql.NullInt32  `db:"family_id"`
	FirstName   string         `db:"first_name"`
	LastName    string         `db:"last_name"`
	BirthDate   time.Time      `db:"birth_date"`
	Gender      string         `db:"gender"`
	Cedula      sql.NullString `db:"cedula"`
	Category    string         `db:"category"`
	TutorName   sql.NullString `db:"tutor_name"`
	TutorCedula sql.NullString `db:"tutor_cedula"`
	TutorEmail  sql.NullString `db:"tutor_email"`
	TutorPhone  sql.NullString `db:"tutor_phone"`
}

func (pp *PendingPlayer) FullName() string {
	if pp.LastName == "" {
		return pp.FirstName
	}
	return pp.FirstName + " " + pp.LastName
}
