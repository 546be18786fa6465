package storefront

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		archived *bool
		active   *bool
		want     bool
	}{
		{"both absent", nil, nil, true},
		{"active only", nil, boolPtr(true), true},
		{"inactive only", nil, boolPtr(false), false},
		{"not archived only", boolPtr(false), nil, true},
		{"archived only", boolPtr(true), nil, false},
		{"not archived, active", boolPtr(false), boolPtr(true), true},
		{"not archived, inactive", boolPtr(false), boolPtr(false), false},
		{"archived, active", boolPtr(true), boolPtr(true), false},
		{"archived, inactive", boolPtr(true), boolPtr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{ID: "i1", Archived: tt.archived, Active: tt.active}
			if got := IsAvailable(item); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
