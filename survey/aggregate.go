// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"math"
	"time"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/models"
)

// Dataset is everything the statistics are computed from.
type Dataset struct {
	Total      int
	BirthDates []time.Time
	FoodRows   []models.Attribute
	RatingRows map[StatementKey][]models.Attribute
}

// Compute derives the statistics view. An empty dataset yields the zero
// view. Each metric is computed on its own rows only, so a metric with no
// data reports 0 without affecting the others.
func Compute(ds Dataset, now time.Time) models.SurveyStatistics {
	var stats models.SurveyStatistics
	if ds.Total == 0 {
		return stats
	}
	stats.TotalSurveys = ds.Total

	if len(ds.BirthDates) > 0 {
		ages := make([]int, len(ds.BirthDates))
		for i, dob := range ds.BirthDates {
			ages[i] = AgeInYear(dob, now)
		}
		stats.AverageAge = Round1(meanInts(ages))
		stats.OldestAge, stats.YoungestAge = maxMin(ages)
	}

	foodCounts := make(map[string]int, len(TrackedFoods))
	for _, a := range ds.FoodRows {
		if f, ok := DecodeAttribute(a); ok {
			if food, isFood := f.(FoodChoice); isFood {
				foodCounts[food.Label]++
			}
		}
	}
	for _, tf := range TrackedFoods {
		pct := float64(foodCounts[tf.Label]) / float64(ds.Total) * 100
		*tf.percentage(&stats) = Round1(pct)
	}

	for _, st := range Statements {
		var values []int
		for _, a := range ds.RatingRows[st.Key] {
			if f, ok := DecodeAttribute(a); ok {
				if r, isRating := f.(StatementRating); isRating && r.Key == st.Key {
					values = append(values, r.Value)
				}
			}
		}
		if len(values) > 0 {
			*st.average(&stats) = Round1(meanInts(values))
		}
	}

	return stats
}

// AgeInYear is the calendar-year difference between now and the birth
// date. It ignores whether the birthday has passed yet this year.
func AgeInYear(dob, now time.Time) int {
	return now.Year() - dob.Year()
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func maxMin(values []int) (int, int) {
	hi, lo := values[0], values[0]
	for _, v := range values[1:] {
		hi = max(hi, v)
		lo = min(lo, v)
	}
	return hi, lo
}
