package seed

import (
	"testing"
	"time"
)

func Test_ConvertRecord(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		rec        jsonCard
		wantReason string
	}{
		{
			name: "Valid",
			rec:  jsonCard{ID: "pika-d1", Name: "Pikachu", Rarity: "d1", SetID: "a1"},
		},
		{
			name:       "MissingID",
			rec:        jsonCard{Name: "Pikachu", Rarity: "d1"},
			wantReason: "missing id",
		},
		{
			name:       "WhitespaceID",
			rec:        jsonCard{ID: "   ", Name: "Pikachu", Rarity: "d1"},
			wantReason: "missing id",
		},
		{
			name:       "MissingName",
			rec:        jsonCard{ID: "pika-d1", Rarity: "d1"},
			wantReason: "missing name",
		},
		{
			name:       "UnknownRarity",
			rec:        jsonCard{ID: "pika-d1", Name: "Pikachu", Rarity: "d9"},
			wantReason: `unknown rarity "d9"`,
		},
		{
			name: "CrownIsValidCatalogEntry",
			rec:  jsonCard{ID: "zard-crown", Name: "Charizard", Rarity: "crown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, reason := convertRecord(tt.rec, now)
			if reason != tt.wantReason {
				t.Fatalf("convertRecord() reason = %q, want %q", reason, tt.wantReason)
			}
			if tt.wantReason == "" && card == nil {
				t.Fatal("convertRecord() returned nil card for valid record")
			}
			if tt.wantReason != "" && card != nil {
				t.Fatalf("convertRecord() = %v, want nil for invalid record", card)
			}
		})
	}
}

func Test_ConvertRecord_TrimsFields(t *testing.T) {
	card, reason := convertRecord(jsonCard{ID: " pika-d1 ", Name: " Pikachu ", Rarity: "d1"}, time.Now())
	if reason != "" {
		t.Fatalf("convertRecord() reason = %q", reason)
	}
	if card.ID != "pika-d1" || card.Name != "Pikachu" {
		t.Errorf("convertRecord() did not trim fields: %q / %q", card.ID, card.Name)
	}
}
