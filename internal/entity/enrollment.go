package entity

import "time"

const BirthDateLayout = "2006-01-02"

type Tutor struct {
	Name   string `json:"name"`
	Cedula string `json:"cedula,omitempty"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
}

type PlayerForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
	Cedula    string `json:"cedula,omitempty"`
	Category  string `json:"category"`
}

func (pf *PlayerForm) ParsedBirthDate() (time.Time, error) {
	return time.Parse(BirthDateLayout, pf.BirthDate)
}

// EnrollmentForm is the buffered enrollment payload submitted by a tutor.
type EnrollmentForm struct {
	Tutor   Tutor        `json:"tutor"`
	Players []PlayerForm `json:"players"`
}

// NeedsFamily reports whether the batch is big enough to materialize a family.
func (ef *EnrollmentForm) NeedsFamily() bool {
	return len(ef.Players) >= 2
}

// EnrollmentResult holds the ids of every row an enrollment run created or reused.
type EnrollmentResult struct {
	FamilyId         int   `json:"family_id,omitempty"`
	FamilyCreated    bool  `json:"family_created"`
	PendingPlayerIds []int `json:"pending_player_ids"`
	PaymentId        int   `json:"payment_id,omitempty"`
}
