// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/linkhub-net/linkhub/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists ...
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	GetProfiles(ctx context.Context, ids ...string) ([]*entities.Profile, error)
	SetProfile(ctx context.Context, p *entities.Profile) error

	// GetConnectedPeers returns ids of users connected to the given user
	// with accepted status, regardless of who requested the connection.
	GetConnectedPeers(ctx context.Context, userID string) ([]string, error)
	CreateConnection(ctx context.Context, c *entities.Connection) error
	GetConnection(ctx context.Context, id string) (*entities.Connection, error)
	SetConnectionStatus(ctx context.Context, id string, status entities.ConnectionStatus) error

	GetCommunityIDs(ctx context.Context, userID string) ([]string, error)
	IsCommunityMember(ctx context.Context, communityID, userID string) (bool, error)

	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	CountPosts(ctx context.Context, p *ListPostsParams) (uint64, error)
	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	DeletePost(ctx context.Context, id, authorID string) error
	AddPostViews(ctx context.Context, ids ...string) error

	GetLikes(ctx context.Context, likedBy string, postIDs ...string) (map[string]bool, error)
	CreateLike(ctx context.Context, postID, userID string) (bool, error)
	DeleteLike(ctx context.Context, postID, userID string) (bool, error)
	// RecountPostLikes rewrites posts.likes_count from the likes table and
	// returns the new value.
	RecountPostLikes(ctx context.Context, postID string) (uint32, error)

	CreateComment(ctx context.Context, c *entities.Comment) error
	GetRecentComments(ctx context.Context, limit int, postIDs ...string) (map[string][]*Comment, error)
	IncrementPostComments(ctx context.Context, postID string) (uint32, error)

	CreateNotifications(ctx context.Context, nn ...*entities.Notification) error
	ListNotifications(ctx context.Context, p *ListNotificationsParams) ([]*Notification, error)
	CountNotifications(ctx context.Context, recipientID string, unreadOnly bool) (uint64, error)
	// MarkNotificationsRead marks given notifications of the recipient as
	// read, or all of them if no ids are given.
	MarkNotificationsRead(ctx context.Context, recipientID string, ids ...string) error

	CreateConversation(ctx context.Context, c *entities.Conversation) error
	GetConversation(ctx context.Context, id string) (*entities.Conversation, error)
	FindConversation(ctx context.Context, userID, peerID string) (*entities.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]*entities.Conversation, error)
	SetConversationLastMessage(ctx context.Context, conversationID, messageID string, at time.Time) error

	CreateMessage(ctx context.Context, m *entities.Message) error
	ListMessages(ctx context.Context, p *ListMessagesParams) ([]*Message, error)
	CountMessages(ctx context.Context, conversationID string) (uint64, error)

	GetPlatformStats(ctx context.Context) (*PlatformStats, error)
}

// PostsBranch is one OR-branch of the feed predicate. Zero-valued fields are
// omitted from the predicate.
type PostsBranch struct {
	Type      entities.PostType
	AuthorIDs []string
	SourceIDs []string
}

// ListPostsParams ...
// Branches are combined with OR; an empty Branches list matches nothing.
type ListPostsParams struct {
	Branches []PostsBranch
	Limit    uint16
	Offset   uint64
}

// ListNotificationsParams ...
type ListNotificationsParams struct {
	RecipientID string
	UnreadOnly  bool
	Limit       uint16
	Offset      uint64
}

// ListMessagesParams ...
type ListMessagesParams struct {
	ConversationID string
	Limit          uint16
	Offset         uint64
}

// Comment is a comment with its author's profile attached.
type Comment struct {
	entities.Comment
	Author entities.Profile
}

// Notification is a notification with its sender's profile attached.
type Notification struct {
	entities.Notification
	Sender entities.Profile
}

// Message is a message with its sender's profile attached.
type Message struct {
	entities.Message
	Sender entities.Profile
}

// PlatformStats ...
type PlatformStats struct {
	Profiles uint64
	Posts    uint64
	Likes    uint64
	Comments uint64
}
