package entity

import (
	"database/sql"
	"time"
)

// Family groups the pending players of one tutor. Families are only created
// for enrollment batches with two or more players.
type Family struct {
	Id        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	FamilyInsert
}

type FamilyInsert struct {
	TutorName    string         `db:"tutor_name"`
	TutorNameKey string         `db:"tutor_name_key"`
	TutorCedula  sql.NullString `db:"tutor_cedula"`
	TutorEmail   string         `db:"tutor_email"`
	TutorPhone   string         `db:"tutor_phone"`
}
