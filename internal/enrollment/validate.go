package enrollment

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/enrollment.json
var enrollmentSchema string

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError lists every field the enrollment payload got wrong.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (ve *ValidationError) Error() string {
	parts := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		parts = append(parts, f.Field+": "+f.Description)
	}
	return fmt.Sprintf("%s: %s", gerr.ErrValidation, strings.Join(parts, "; "))
}

func (ve *ValidationError) Unwrap() error {
	return gerr.ErrValidation
}

type validator struct {
	schema *gojsonschema.Schema
	now    func() time.Time
}

func newValidator(now func() time.Time) (*validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(enrollmentSchema))
	if err != nil {
		return nil, fmt.Errorf("can't load enrollment schema: %w", err)
	}
	return &validator{schema: schema, now: now}, nil
}

func (v *validator) validate(form *entity.EnrollmentForm) error {
	if form == nil {
		return &ValidationError{Fields: []FieldError{{Field: "(root)", Description: "enrollment is required"}}}
	}
	res, err := v.schema.Validate(gojsonschema.NewGoLoader(form))
	if err != nil {
		return fmt.Errorf("can't validate enrollment: %w", err)
	}

	ve := &ValidationError{}
	for _, re := range res.Errors() {
		ve.Fields = append(ve.Fields, FieldError{Field: re.Field(), Description: re.Description()})
	}
	if res.Valid() {
		today := v.now()
		for i, p := range form.Players {
			bd, err := p.ParsedBirthDate()
			field := fmt.Sprintf("players.%d.birth_date", i)
			if err != nil {
				ve.Fields = append(ve.Fields, FieldError{Field: field, Description: "not a calendar date"})
				continue
			}
			if bd.After(today) {
				ve.Fields = append(ve.Fields, FieldError{Field: field, Description: "is in the future"})
			}
		}
	}
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}
