package models

import (
	"time"

	"github.com/uptrace/bun"
)

type MessageContentType string

const (
	MessageContentText  MessageContentType = "text"
	MessageContentImage MessageContentType = "image"
)

type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID            int64  `bun:"id,pk,autoincrement"`
	NegotiationID int64  `bun:"negotiation_id,notnull"`
	SenderID      string `bun:"sender_id,notnull"`

	// Content holds the text body, or the stored object URL for images.
	Content     string             `bun:"content,notnull"`
	ContentType MessageContentType `bun:"content_type,notnull"`

	// IsSystem marks messages the service itself injects, like the opener
	// written when a negotiation is spawned.
	IsSystem bool `bun:"is_system,notnull,default:false"`
	IsRead   bool `bun:"is_read,notnull,default:false"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`

	Negotiation *Negotiation `bun:"rel:belongs-to,join:negotiation_id=id"`
}
