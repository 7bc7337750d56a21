// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey turns survey submissions into storage rows and storage rows
back into survey views and statistics.

# Storage Shape

A submission is stored as one subject row (personal details) plus a
variable number of attribute rows keyed by (survey id, name):

  - "FavoriteFood:<label>" for each ticked food, with no rating
  - "MovieRating", "RadioRating", "EatOutRating", "TVRating" for each
    answered statement, with the 1-5 rating

An unanswered statement has no row at all, so it reads back as null and is
left out of the averages.

# Facts

Inside the package a row is a Fact, either FoodChoice or StatementRating.
EncodeFact and DecodeAttribute are the only code that knows the naming
convention; the mapper and the aggregator work on facts.

# Vocabulary

Statements and TrackedFoods are the fixed registry used by both the mapper
and the aggregator. Adding a statement or a tracked food is a change to
vocabulary.go and the matching models fields.

# Statistics

	stats := survey.Compute(dataset, now)

Ages use calendar-year subtraction (now.Year() - birth year). Averages and
percentages are rounded to one decimal, halves away from zero. With no
surveys every field is 0.
*/
package survey
