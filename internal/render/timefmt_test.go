package render

import (
	"testing"
	"time"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"cero segundos", 0, "Just now"},
		{"59 segundos sigue siendo ahora", 59 * time.Second, "Just now"},
		{"60 segundos pasa a minutos", 60 * time.Second, "1m ago"},
		{"61 segundos", 61 * time.Second, "1m ago"},
		{"59 minutos", 59 * time.Minute, "59m ago"},
		{"60 minutos pasa a horas", 60 * time.Minute, "1h ago"},
		{"23 horas", 23 * time.Hour, "23h ago"},
		{"24 horas pasa a dias", 24 * time.Hour, "1d ago"},
		{"varios dias", 73 * time.Hour, "3d ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RelativeTime(now.Add(-tc.elapsed), now)
			if got != tc.want {
				t.Fatalf("RelativeTime(-%v) = %q, want %q", tc.elapsed, got, tc.want)
			}
		})
	}

	t.Run("timestamp en el futuro", func(t *testing.T) {
		got := RelativeTime(now.Add(5*time.Minute), now)
		if got != "Just now" {
			t.Fatalf("expected future timestamp to read Just now, got %q", got)
		}
	})
}
