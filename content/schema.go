package content

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pelletier/go-toml/v2"
)

// SchemaError reports a front matter field that failed validation.
type SchemaError struct {
	Field  string // offending field name
	Reason string // constraint that was violated
}

// Error returns a message like "title is required".
func (e *SchemaError) Error() string {
	return e.Field + " " + e.Reason
}

// schemaFields is the closed set of fields a post may declare.
// Anything else in a front matter block is a typo and fails the build.
var schemaFields = map[string]bool{
	"title":       true,
	"description": true,
	"date":        true,
	"tags":        true,
	"draft":       true,
	"image":       true,
}

// Validate checks a raw front matter record against the post schema and
// returns the validated FrontMatter. It is a pure function: the same input
// always yields the same outcome. Unknown fields are rejected, title and
// date are required, draft defaults to false, and tags default to an empty
// list with authored order preserved.
func Validate(raw map[string]any) (FrontMatter, error) {
	var fm FrontMatter
	for name := range raw {
		if !schemaFields[name] {
			return fm, &SchemaError{Field: name, Reason: "is not a recognized field"}
		}
	}

	title, err := stringField(raw, "title")
	if err != nil {
		return fm, err
	}
	if title == "" {
		return fm, &SchemaError{Field: "title", Reason: "is required"}
	}
	fm.Title = title

	if _, ok := raw["date"]; !ok {
		return fm, &SchemaError{Field: "date", Reason: "is required"}
	}
	fm.Date, err = dateField(raw["date"])
	if err != nil {
		return fm, err
	}

	fm.Description, err = stringField(raw, "description")
	if err != nil {
		return fm, err
	}
	fm.Image, err = stringField(raw, "image")
	if err != nil {
		return fm, err
	}

	if v, ok := raw["draft"]; ok {
		b, ok := v.(bool)
		if !ok {
			return fm, &SchemaError{Field: "draft", Reason: "must be a boolean"}
		}
		fm.Draft = b
	}

	fm.Tags, err = tagsField(raw)
	if err != nil {
		return fm, err
	}
	return fm, nil
}

// Record encodes the front matter back into a raw record such that
// Validate(fm.Record()) reproduces fm exactly. Optional fields at their
// defaults are omitted.
func (fm FrontMatter) Record() map[string]any {
	raw := map[string]any{
		"title": fm.Title,
		"date":  fm.Date,
	}
	if fm.Description != "" {
		raw["description"] = fm.Description
	}
	if fm.Image != "" {
		raw["image"] = fm.Image
	}
	if fm.Draft {
		raw["draft"] = true
	}
	if len(fm.Tags) > 0 {
		tags := make([]string, len(fm.Tags))
		copy(tags, fm.Tags)
		raw["tags"] = tags
	}
	return raw
}

// stringField returns the named field as a string, or "" when absent.
func stringField(raw map[string]any, name string) (string, error) {
	v, ok := raw[name]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &SchemaError{Field: name, Reason: "must be a string"}
	}
	return s, nil
}

// dateField coerces the date value into a time.Time. TOML supplies native
// date types; YAML supplies either time.Time or a string, which is parsed
// leniently.
func dateField(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case toml.LocalDate:
		return d.AsTime(time.UTC), nil
	case toml.LocalDateTime:
		return d.AsTime(time.UTC), nil
	case string:
		t, err := dateparse.ParseAny(d)
		if err != nil {
			return time.Time{}, &SchemaError{Field: "date", Reason: fmt.Sprintf("must parse as a calendar date: %q", d)}
		}
		return t, nil
	}
	return time.Time{}, &SchemaError{Field: "date", Reason: "must be a calendar date"}
}

// tagsField returns the tags list in authored order, never nil.
func tagsField(raw map[string]any) ([]string, error) {
	v, ok := raw["tags"]
	if !ok {
		return []string{}, nil
	}
	switch list := v.(type) {
	case []string:
		tags := make([]string, len(list))
		copy(tags, list)
		return tags, nil
	case []any:
		tags := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, &SchemaError{Field: "tags", Reason: "must be a list of strings"}
			}
			tags = append(tags, s)
		}
		return tags, nil
	}
	return nil, &SchemaError{Field: "tags", Reason: "must be a list of strings"}
}
