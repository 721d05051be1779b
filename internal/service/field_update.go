package service

import (
	"fmt"
	"slices"

	"gameborrow/internal/models"
)

// FieldResult is the outcome of one attempted field update.
type FieldResult struct {
	Field   string
	Updated bool
	Err     error
}

// updateString sets *stored to the candidate when one is given and it differs
// from the stored value. A nil or empty candidate leaves the field alone.
func updateString(field string, stored *string, candidate *string) FieldResult {
	if candidate == nil || *candidate == "" {
		return FieldResult{Field: field}
	}
	if *stored == *candidate {
		return FieldResult{Field: field, Err: models.ErrNoChange}
	}

	*stored = *candidate
	return FieldResult{Field: field, Updated: true}
}

func updateList(field string, stored *[]string, candidate []string) FieldResult {
	if len(candidate) == 0 {
		return FieldResult{Field: field}
	}
	if slices.Equal(*stored, candidate) {
		return FieldResult{Field: field, Err: models.ErrNoChange}
	}

	*stored = slices.Clone(candidate)
	return FieldResult{Field: field, Updated: true}
}

func applyGameUpdate(game models.Game, upd models.GameUpdate) (models.Game, []FieldResult) {
	results := []FieldResult{
		updateString("title", &game.Title, upd.Title),
		updateString("description", &game.Description, upd.Description),
		updateString("filesLocation", &game.FilesLocation, upd.FilesLocation),
		updateList("imageURIs", &game.ImageURIs, upd.ImageURIs),
	}
	return game, results
}

func applyPublisherUpdate(publisher models.Publisher, upd models.PublisherUpdate) (models.Publisher, []FieldResult) {
	results := []FieldResult{
		updateString("name", &publisher.Name, upd.Name),
		updateString("email", &publisher.Email, upd.Email),
		updateString("website", &publisher.Website, upd.Website),
	}
	return publisher, results
}

// fieldErrors collects every failed result; nil means the update may be persisted.
func fieldErrors(results []FieldResult) models.FieldErrors {
	var errs models.FieldErrors
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		errs = append(errs, models.FieldError{
			Field:   r.Field,
			Message: fmt.Sprintf("updated value for field %s matches the one stored in the database", r.Field),
			Err:     r.Err,
		})
	}
	return errs
}
