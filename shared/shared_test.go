package shared_test

import (
	"testing"
	"time"

	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/dto"
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
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "partial last page rounds up",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single page",
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
	type update struct {
		Status string    `db:"status"`
		Notes  string    `db:"notes"`
		Ignore time.Time `db:"-"`
	}

	fields := shared.TransformFields(update{Status: "Checked-In"}, "test-user")

	if fields["status"] != "Checked-In" {
		t.Errorf("expected status to be set, got %v", fields["status"])
	}

	if _, ok := fields["notes"]; ok {
		t.Error("expected zero-valued notes to be skipped")
	}

	if fields[constant.FieldModifiedBy] != "test-user" {
		t.Errorf("expected modified_by to be test-user, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestBuildCacheKey(t *testing.T) {
	result := shared.BuildCacheKey("booking", "get", "abc")

	if result != "booking:get:abc" {
		t.Errorf("expected booking:get:abc, got %s", result)
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc", "id", "bookings")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected a dto.Filter")
	}

	if filter.Field != "id" || filter.Value != "abc" || filter.Table != "bookings" {
		t.Errorf("unexpected filter: %+v", filter)
	}
}
