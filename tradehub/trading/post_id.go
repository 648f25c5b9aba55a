package trading

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/pockettcg/tradehub/tradehub/database/repositories"
)

const (
	postIDPrefix = "TP"
	postIDLength = 6
	maxIDRetries = 5
)

// PostIDGenerator hands out the short shareable codes trade posts are
// referenced by in client UIs. Uniqueness is settled against the database
// column constraint, with a retry loop for the rare collision.
type PostIDGenerator struct {
	repo    repositories.TradePostRepository
	idGenMu sync.Mutex
}

func NewPostIDGenerator(repo repositories.TradePostRepository) *PostIDGenerator {
	return &PostIDGenerator{repo: repo}
}

func (g *PostIDGenerator) Generate(ctx context.Context) (string, error) {
	generateCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	g.idGenMu.Lock()
	defer g.idGenMu.Unlock()

	for attempt := 0; attempt < maxIDRetries; attempt++ {
		id, err := candidatePostID()
		if err != nil {
			return "", fmt.Errorf("failed to generate candidate ID: %w", err)
		}

		exists, err := g.repo.PostIDExists(generateCtx, id)
		if err == nil && !exists {
			return id, nil
		}

		backoff := time.Duration(1<<uint(attempt)) * time.Millisecond
		select {
		case <-generateCtx.Done():
			return "", fmt.Errorf("timeout during ID generation: %w", generateCtx.Err())
		case <-time.After(backoff):
		}
	}

	return "", fmt.Errorf("failed to generate unique post ID after %d attempts", maxIDRetries)
}

func candidatePostID() (string, error) {
	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	suffix := base36encode(bytes)
	for len(suffix) < postIDLength {
		suffix = "0" + suffix
	}
	return postIDPrefix + suffix[:postIDLength], nil
}

func base36encode(bytes []byte) string {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	result := ""
	number := binary.BigEndian.Uint32(bytes)

	for number > 0 {
		result = string(alphabet[number%36]) + result
		number /= 36
	}
	return result
}
