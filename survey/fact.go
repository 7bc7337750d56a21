// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"strings"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/models"
)

// Fact is one answered piece of a survey: either a FoodChoice or a
// StatementRating. It is converted to and from the flat attribute row only
// by EncodeFact and DecodeAttribute.
type Fact interface {
	attributeName() string
}

// FoodChoice records that a food was ticked. It carries no rating.
type FoodChoice struct {
	Label string
}

// StatementRating is the answer to one Likert statement.
type StatementRating struct {
	Key   StatementKey
	Value int
}

func (f FoodChoice) attributeName() string { return FoodPrefix + f.Label }

func (r StatementRating) attributeName() string { return string(r.Key) }

// EncodeFact flattens a fact into an attribute row owned by surveyID.
func EncodeFact(surveyID int64, f Fact) models.Attribute {
	attr := models.Attribute{SurveyID: surveyID, Name: f.attributeName()}
	if r, ok := f.(StatementRating); ok {
		v := r.Value
		attr.Rating = &v
	}
	return attr
}

// DecodeAttribute interprets a stored row. Rows whose name is neither a
// food nor a registered statement, and statement rows without a rating,
// report ok=false.
func DecodeAttribute(a models.Attribute) (Fact, bool) {
	if label, found := strings.CutPrefix(a.Name, FoodPrefix); found {
		return FoodChoice{Label: label}, true
	}
	st, found := LookupStatement(StatementKey(a.Name))
	if !found || a.Rating == nil {
		return nil, false
	}
	return StatementRating{Key: st.Key, Value: *a.Rating}, true
}
