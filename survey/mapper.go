// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"strings"
	"time"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/models"
)

// Facts lists what a submission answered: one FoodChoice per distinct food,
// then one StatementRating per answered statement. Unanswered statements
// produce nothing.
func Facts(sub models.SurveySubmission) []Fact {
	facts := make([]Fact, 0, len(sub.FavoriteFoods)+len(Statements))

	seen := make(map[string]bool, len(sub.FavoriteFoods))
	for _, food := range sub.FavoriteFoods {
		food = strings.TrimSpace(food)
		// (survey_id, option_value) is the primary key
		if seen[food] {
			continue
		}
		seen[food] = true
		facts = append(facts, FoodChoice{Label: food})
	}

	for _, st := range Statements {
		if v := st.submitted(&sub); v != nil {
			facts = append(facts, StatementRating{Key: st.Key, Value: *v})
		}
	}

	return facts
}

// Normalize converts a submission into the subject row and its attribute
// rows. SurveyID is left zero on every attribute; storage fills it in once
// the subject id is assigned.
func Normalize(sub models.SurveySubmission, now time.Time) (models.Subject, []models.Attribute) {
	subject := models.Subject{
		FullName:       strings.TrimSpace(sub.FullName),
		Email:          strings.TrimSpace(sub.Email),
		DateOfBirth:    sub.DateOfBirth.Time,
		ContactNumbers: strings.TrimSpace(sub.ContactNumbers),
		SubmittedAt:    now,
	}

	facts := Facts(sub)
	attrs := make([]models.Attribute, 0, len(facts))
	for _, f := range facts {
		attrs = append(attrs, EncodeFact(0, f))
	}

	return subject, attrs
}

// Reconstruct rebuilds the response view of one survey from its subject
// row and attribute rows. Attribute order does not matter except that the
// first rating seen for a statement wins.
func Reconstruct(subject models.Subject, attrs []models.Attribute) models.SurveyResponse {
	resp := models.SurveyResponse{
		SurveyID:       subject.ID,
		FullName:       subject.FullName,
		Email:          subject.Email,
		DateOfBirth:    models.Date{Time: subject.DateOfBirth},
		ContactNumbers: subject.ContactNumbers,
		SubmissionDate: subject.SubmittedAt,
		FavoriteFoods:  []string{},
	}

	for _, a := range attrs {
		fact, ok := DecodeAttribute(a)
		if !ok {
			continue
		}
		switch f := fact.(type) {
		case FoodChoice:
			resp.FavoriteFoods = append(resp.FavoriteFoods, f.Label)
		case StatementRating:
			st, _ := LookupStatement(f.Key)
			if slot := st.answer(&resp); *slot == nil {
				v := f.Value
				*slot = &v
			}
		}
	}

	return resp
}
