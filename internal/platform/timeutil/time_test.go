package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimeMarshalJSONUsesMillis(t *testing.T) {
	ts := NewTime(time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC))

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-01-15T10:30:00.123Z"` {
		t.Fatalf("unexpected encoding %s", data)
	}
}

func TestTimeUnmarshalJSON(t *testing.T) {
	var ts Time
	if err := json.Unmarshal([]byte(`"2024-01-15T12:30:00+02:00"`), &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ts.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", ts.Time)
	}

	before := ts
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !ts.Equal(before.Time) {
		t.Fatal("expected null to preserve the existing value")
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatal("expected error for invalid time")
	}
}
