package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"checklist-sync/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	tm := time.Date(2024, 5, 1, 22, 30, 5, 999, loc)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if got, want := string(b), `"2024-05-01T15:30:05Z"`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	var dt response.DateTime
	if err := json.Unmarshal([]byte(`"2024-05-01T15:30:05Z"`), &dt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 1, 15, 30, 5, 0, time.UTC)
	if !time.Time(dt).Equal(want) {
		t.Errorf("expected %v, got %v", want, time.Time(dt))
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &dt); err == nil {
		t.Error("expected an error for a malformed timestamp")
	}
}
