package signer

import (
	"errors"
	"testing"
	"time"
)

func dur(d time.Duration) *time.Duration {
	return &d
}

func TestResolveExpiry(t *testing.T) {
	tests := []struct {
		name      string
		requested *time.Duration
		want      time.Duration
		wantErr   bool
	}{
		{
			name:      "absent uses default",
			requested: nil,
			want:      DefaultExpiry,
		},
		{
			name:      "minimum valid duration",
			requested: dur(time.Second),
			want:      time.Second,
		},
		{
			name:      "30 minutes",
			requested: dur(30 * time.Minute),
			want:      30 * time.Minute,
		},
		{
			name:      "6 hours",
			requested: dur(6 * time.Hour),
			want:      6 * time.Hour,
		},
		{
			name:      "maximum is inclusive",
			requested: dur(12 * time.Hour),
			want:      12 * time.Hour,
		},
		{
			name:      "zero is rejected",
			requested: dur(0),
			wantErr:   true,
		},
		{
			name:      "negative is rejected",
			requested: dur(-time.Second),
			wantErr:   true,
		},
		{
			name:      "one second over maximum",
			requested: dur(12*time.Hour + time.Second),
			wantErr:   true,
		},
		{
			name:      "24 hours",
			requested: dur(24 * time.Hour),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveExpiry(tt.requested)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveExpiry() = %v, want error", got)
				}
				if !errors.Is(err, ErrInvalidExpiry) {
					t.Errorf("ResolveExpiry() error = %v, want ErrInvalidExpiry", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveExpiry() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveExpiry() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveExpiry_InRangeUnchanged(t *testing.T) {
	// No rounding and no clamping anywhere inside the valid window.
	for _, d := range []time.Duration{time.Second, 90 * time.Second, time.Hour, 11*time.Hour + 59*time.Minute} {
		got, err := ResolveExpiry(&d)
		if err != nil {
			t.Fatalf("ResolveExpiry(%v) error = %v", d, err)
		}
		if got != d {
			t.Errorf("ResolveExpiry(%v) = %v, want unchanged", d, got)
		}
	}
}
