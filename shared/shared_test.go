package shared_test

import (
	"testing"
	"time"

	"campnest/shared"
	"campnest/shared/constant"
	"campnest/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type UpdateRequest struct {
		Name        string `db:"name"`
		Description string `db:"description"`
		Capacity    int    `db:"capacity"`
		Untagged    string
	}

	req := UpdateRequest{
		Name:     "Riverside Pitch",
		Capacity: 4,
		Untagged: "ignored",
	}

	fields := shared.TransformFields(req, "admin-id")

	if fields["name"] != "Riverside Pitch" {
		t.Errorf("expected name to be set, got %v", fields["name"])
	}

	if fields["capacity"] != 4 {
		t.Errorf("expected capacity to be set, got %v", fields["capacity"])
	}

	if _, ok := fields["description"]; ok {
		t.Error("expected zero-valued description to be skipped")
	}

	if _, ok := fields["Untagged"]; ok {
		t.Error("expected untagged field to be skipped")
	}

	if fields[constant.FieldModifiedBy] != "admin-id" {
		t.Errorf("expected modified_by to be admin-id, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("some-id", "id", "campsites")

	if len(filter.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(filter.Filters))
	}

	f, ok := filter.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be a dto.Filter")
	}

	if f.Field != "id" || f.Value != "some-id" || f.Table != "campsites" {
		t.Errorf("unexpected filter contents: %+v", f)
	}

	if f.Operator != dto.FilterOperatorEq {
		t.Errorf("expected Eq operator, got %v", f.Operator)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "no parts returns prefix",
			prefix:   "campsite:gets",
			parts:    nil,
			expected: "campsite:gets",
		},
		{
			name:     "single part",
			prefix:   "campsite:get",
			parts:    []string{"abc"},
			expected: "campsite:get:abc",
		},
		{
			name:     "multiple parts",
			prefix:   "booking:get",
			parts:    []string{"abc", "def"},
			expected: "booking:get:abc:def",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10}

	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "active",
				Table:    "campsites",
			},
		},
	}

	first := shared.BuildCacheKeyWithQuery("campsite:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("campsite:gets", params, filter)

	if first != second {
		t.Errorf("expected deterministic keys, got %s and %s", first, second)
	}

	otherParams := dto.QueryParams{Page: 3, Limit: 10}

	third := shared.BuildCacheKeyWithQuery("campsite:gets", otherParams, filter)
	if first == third {
		t.Error("expected different pages to produce different keys")
	}

	noFilter := shared.BuildCacheKeyWithQuery("campsite:gets", params, dto.FilterGroup{})
	if first == noFilter {
		t.Error("expected filtered and unfiltered queries to produce different keys")
	}
}
