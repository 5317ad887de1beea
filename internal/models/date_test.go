package models

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "canonical", in: "2024-06-01", want: "2024-06-01"},
		{name: "leap day", in: "2024-02-29", want: "2024-02-29"},
		{name: "empty", in: "", wantErr: true},
		{name: "wrong order", in: "01-06-2024", wantErr: true},
		{name: "not a date", in: "yesterday", wantErr: true},
		{name: "invalid day", in: "2023-02-29", wantErr: true},
		{name: "timestamp", in: "2024-06-01T00:00:00Z", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeDate(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeDate(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToday(t *testing.T) {
	got := Today()
	if _, err := time.Parse(DateLayout, got); err != nil {
		t.Errorf("Today() = %q, not a canonical date: %v", got, err)
	}
}

func TestContentColumns_ExcludesImmutable(t *testing.T) {
	for _, col := range ContentColumns() {
		switch col {
		case "id", "date", "created_at":
			t.Errorf("content columns must not include %q", col)
		}
	}
	if len(ContentColumns()) != 24 {
		t.Errorf("content columns = %d, want 24", len(ContentColumns()))
	}
}
