package services

import (
	"strings"

	"SmartTodoGo/models"
)

// NormalizeCategory coerces a free-text category onto the canonical set.
// Canonical values pass through untouched (case-sensitive); anything else is
// looked up lower-cased in the synonym table, and unknown values fall back
// to the default. Never returns an out-of-set value.
func NormalizeCategory(raw string) string {
	for _, c := range models.AllowedCategories {
		if raw == c {
			return raw
		}
	}
	if mapped, ok := models.CategorySynonyms[strings.ToLower(raw)]; ok {
		return mapped
	}
	return models.DefaultCategory
}

// NormalizePriority passes low/medium/high through and defaults the rest.
func NormalizePriority(raw string) string {
	switch raw {
	case "low", "medium", "high":
		return raw
	}
	return models.DefaultPriority
}

// NormalizeDifficulty passes easy/medium/hard through and defaults the rest.
func NormalizeDifficulty(raw string) string {
	switch raw {
	case "easy", "medium", "hard":
		return raw
	}
	return models.DefaultDifficulty
}
