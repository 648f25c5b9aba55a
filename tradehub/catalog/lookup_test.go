package catalog

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/tradehub/database/repositories/mock"
)

func Test_Lookup_Resolve_CachesFetchedCards(t *testing.T) {
	ctrl := gomock.NewController(t)

	cards := mock.NewMockCardRepository(ctrl)
	// A single fetch serves both calls; the second resolve must come
	// entirely from cache.
	cards.EXPECT().
		GetByIDs(gomock.Any(), []string{"pika-d1"}).
		Return([]*models.Card{
			{ID: "pika-d1", Name: "Pikachu", Rarity: models.RarityDiamond1},
		}, nil).
		Times(1)

	lookup := NewLookup(cards)

	for i := 0; i < 2; i++ {
		got, err := lookup.Resolve(context.Background(), []string{"pika-d1"})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "pika-d1" {
			t.Fatalf("Resolve() = %v, want pika-d1", got)
		}
	}
}

func Test_Lookup_Resolve_UnknownIDsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)

	cards := mock.NewMockCardRepository(ctrl)
	cards.EXPECT().
		GetByIDs(gomock.Any(), []string{"pika-d1", "no-such"}).
		Return([]*models.Card{
			{ID: "pika-d1", Name: "Pikachu", Rarity: models.RarityDiamond1},
		}, nil)

	lookup := NewLookup(cards)

	got, err := lookup.Resolve(context.Background(), []string{"pika-d1", "no-such"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Resolve() returned %d cards, want 1", len(got))
	}
}

func Test_Lookup_Resolve_ExpiredEntryRefetched(t *testing.T) {
	ctrl := gomock.NewController(t)

	cards := mock.NewMockCardRepository(ctrl)
	cards.EXPECT().
		GetByIDs(gomock.Any(), []string{"pika-d1"}).
		Return([]*models.Card{
			{ID: "pika-d1", Name: "Pikachu", Rarity: models.RarityDiamond1},
		}, nil).
		Times(2)

	lookup := NewLookup(cards)
	lookup.cacheExpiry = time.Nanosecond

	for i := 0; i < 2; i++ {
		if _, err := lookup.Resolve(context.Background(), []string{"pika-d1"}); err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		time.Sleep(time.Millisecond)
	}
}

func Test_Lookup_SearchByName(t *testing.T) {
	catalog := []*models.Card{
		{ID: "pika-d1", Name: "Pikachu", Rarity: models.RarityDiamond1},
		{ID: "raichu-d2", Name: "Raichu", Rarity: models.RarityDiamond2},
		{ID: "bulba-d1", Name: "Bulbasaur", Rarity: models.RarityDiamond1},
	}

	tests := []struct {
		name    string
		query   string
		limit   int
		wantIDs []string
	}{
		{name: "ExactName", query: "Pikachu", limit: 10, wantIDs: []string{"pika-d1"}},
		{name: "CaseInsensitive", query: "BULBA", limit: 10, wantIDs: []string{"bulba-d1"}},
		{name: "NoMatch", query: "zzzz", limit: 10, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			cards := mock.NewMockCardRepository(ctrl)
			cards.EXPECT().GetAll(gomock.Any()).Return(catalog, nil)

			lookup := NewLookup(cards)

			got, err := lookup.SearchByName(context.Background(), tt.query, tt.limit)
			if err != nil {
				t.Fatalf("SearchByName() error = %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("SearchByName() returned %d cards, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("SearchByName()[%d] = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func Test_Lookup_SearchByName_LimitApplied(t *testing.T) {
	ctrl := gomock.NewController(t)

	catalog := []*models.Card{
		{ID: "pika-d1", Name: "Pikachu", Rarity: models.RarityDiamond1},
		{ID: "pika-d2", Name: "Pikachu EX", Rarity: models.RarityDiamond2},
	}

	cards := mock.NewMockCardRepository(ctrl)
	cards.EXPECT().GetAll(gomock.Any()).Return(catalog, nil)

	lookup := NewLookup(cards)

	got, err := lookup.SearchByName(context.Background(), "pikachu", 1)
	if err != nil {
		t.Fatalf("SearchByName() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("SearchByName() returned %d cards, want 1", len(got))
	}
}
