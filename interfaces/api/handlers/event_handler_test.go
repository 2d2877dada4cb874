package handlers

import (
	"testing"
	"time"
)

func TestRangeFromQuery(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		end    string
		wantOK bool
	}{
		{"both valid", "2024-03-01T00:00:00", "2024-03-02T00:00:00", true},
		{"date only", "2024-03-01", "2024-03-02", true},
		{"missing end", "2024-03-01T00:00:00", "", false},
		{"missing start", "", "2024-03-02T00:00:00", false},
		{"malformed start", "yesterday", "2024-03-02T00:00:00", false},
		{"malformed end", "2024-03-01T00:00:00", "03/02/2024", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, ok := rangeFromQuery(tt.start, tt.end)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !from.Before(to) {
				t.Fatalf("from %v should precede to %v", from, to)
			}
		})
	}
}

func TestDateOrNow(t *testing.T) {
	now := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

	if got := dateOrNow("", now); !got.Equal(now) {
		t.Fatalf("empty date: got %v", got)
	}
	if got := dateOrNow("not-a-date", now); !got.Equal(now) {
		t.Fatalf("malformed date: got %v", got)
	}
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if got := dateOrNow("2024-02-29", now); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestHandlerClocksAreUTC(t *testing.T) {
	local := time.Local
	time.Local = time.FixedZone("UTC-10", -10*60*60)
	t.Cleanup(func() { time.Local = local })

	clocks := map[string]func() time.Time{
		"events": NewEventHandler(nil).now,
		"pages":  NewPageHandler(nil, nil, nil, nil).now,
	}
	for name, now := range clocks {
		if loc := now().Location(); loc != time.UTC {
			t.Errorf("%s clock location = %v, want UTC", name, loc)
		}
	}
}
