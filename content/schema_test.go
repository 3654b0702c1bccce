package content

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
)

func TestValidateMinimal(t *testing.T) {
	fm, err := Validate(map[string]any{"title": "Hello", "date": "2025-01-01"})
	if err != nil {
		t.Fatalf("Validate: %s", err)
	}
	want := FrontMatter{
		Title: "Hello",
		Date:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Tags:  []string{},
	}
	if !reflect.DeepEqual(fm, want) {
		t.Errorf("Expected %#v but got %#v", want, fm)
	}
	if fm.Draft {
		t.Error("Expected draft to default to false")
	}
	if fm.Tags == nil {
		t.Error("Expected tags to default to an empty list, not nil")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]any
		field string
	}{
		{"missing title", map[string]any{"date": "2025-01-01"}, "title"},
		{"empty title", map[string]any{"title": "", "date": "2025-01-01"}, "title"},
		{"missing date", map[string]any{"title": "Hello"}, "date"},
		{"bad date", map[string]any{"title": "Hello", "date": "not a date"}, "date"},
		{"date wrong type", map[string]any{"title": "Hello", "date": 42}, "date"},
		{"title wrong type", map[string]any{"title": 7, "date": "2025-01-01"}, "title"},
		{"unknown field", map[string]any{"title": "Hello", "date": "2025-01-01", "category": "x"}, "category"},
		{"draft wrong type", map[string]any{"title": "Hello", "date": "2025-01-01", "draft": "yes"}, "draft"},
		{"tags wrong type", map[string]any{"title": "Hello", "date": "2025-01-01", "tags": "go"}, "tags"},
		{"tags mixed types", map[string]any{"title": "Hello", "date": "2025-01-01", "tags": []any{"go", 1}}, "tags"},
		{"description wrong type", map[string]any{"title": "Hello", "date": "2025-01-01", "description": 3.14}, "description"},
		{"image wrong type", map[string]any{"title": "Hello", "date": "2025-01-01", "image": true}, "image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.raw)
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("Expected a schema error but got %v", err)
			}
			if se.Field != tt.field {
				t.Errorf("Expected error on field %q but got %q (%s)", tt.field, se.Field, se)
			}
		})
	}
}

func TestValidateDateForms(t *testing.T) {
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		date any
	}{
		{"string", "2025-01-01"},
		{"time", want},
		{"toml local date", toml.LocalDate{Year: 2025, Month: 1, Day: 1}},
		{"toml local datetime", toml.LocalDateTime{LocalDate: toml.LocalDate{Year: 2025, Month: 1, Day: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, err := Validate(map[string]any{"title": "Hello", "date": tt.date})
			if err != nil {
				t.Fatalf("Validate: %s", err)
			}
			if !fm.Date.Equal(want) {
				t.Errorf("Expected %s but got %s", want, fm.Date)
			}
		})
	}
}

func TestValidateFull(t *testing.T) {
	raw := map[string]any{
		"title":       "Authentication Patterns",
		"description": "Sessions, tokens, and where they go wrong",
		"date":        "2025-03-04",
		"tags":        []any{"auth", "architecture", "web"},
		"draft":       true,
		"image":       "/images/auth.png",
	}
	fm, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate: %s", err)
	}
	if fm.Title != "Authentication Patterns" || !fm.Draft || fm.Image != "/images/auth.png" {
		t.Errorf("Unexpected result %#v", fm)
	}
	wantTags := []string{"auth", "architecture", "web"}
	if !reflect.DeepEqual(fm.Tags, wantTags) {
		t.Errorf("Expected tags %v in authored order but got %v", wantTags, fm.Tags)
	}
}

func TestValidateIsPure(t *testing.T) {
	raw := map[string]any{"title": "Hello", "date": "2025-01-01", "tags": []any{"go"}}
	a, errA := Validate(raw)
	b, errB := Validate(raw)
	if errA != nil || errB != nil {
		t.Fatalf("Validate: %v %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Same input produced different results: %#v vs %#v", a, b)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	tests := []FrontMatter{
		{
			Title: "Hello",
			Date:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Tags:  []string{},
		},
		{
			Title:       "Deploying Behind a CDN",
			Description: "Cache keys and invalidation",
			Date:        time.Date(2024, 11, 20, 8, 30, 0, 0, time.UTC),
			Tags:        []string{"deploy", "cdn"},
			Draft:       true,
			Image:       "/images/cdn.jpg",
		},
	}
	for _, fm := range tests {
		got, err := Validate(fm.Record())
		if err != nil {
			t.Fatalf("Validate(Record): %s", err)
		}
		if !reflect.DeepEqual(got, fm) {
			t.Errorf("Round trip changed the record: %#v vs %#v", got, fm)
		}
	}
}
