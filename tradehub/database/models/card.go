package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Rarity classes as printed on the cards. Trade posts must keep all cards
// within a single class, and crown cards are not tradable at all.
const (
	RarityDiamond1 = "d1"
	RarityDiamond2 = "d2"
	RarityDiamond3 = "d3"
	RarityDiamond4 = "d4"
	RarityStar1    = "s1"
	RarityCrown    = "crown"
)

type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID        string    `bun:"id,pk"`
	Name      string    `bun:"name,notnull"`
	Rarity    string    `bun:"rarity,notnull"`
	SetID     string    `bun:"set_id,notnull"`
	ImageURL  string    `bun:"image_url"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Tradable reports whether the card's rarity class may appear on a trade
// post at all.
func (c *Card) Tradable() bool {
	return c.Rarity != RarityCrown
}
