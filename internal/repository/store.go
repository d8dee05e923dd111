// Package repository provides durable per-user storage.
package repository

import (
	"context"

	"github.com/mindscope-app/mindscope/internal/domain"
)

// Collection names for the two logical per-user collections.
const (
	CollectionMoods = "moods"
	CollectionChats = "chats"
)

// Store is the durable storage boundary. Collections are opaque serialized
// payloads keyed by (user id, name); every write replaces the full
// collection, last write wins. An absent key reads as nil payload.
type Store interface {
	ReadCollection(ctx context.Context, userID, name string) ([]byte, error)
	WriteCollection(ctx context.Context, userID, name string, payload []byte) error
	DeleteCollection(ctx context.Context, userID, name string) error

	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	Close() error
}
