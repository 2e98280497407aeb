// Package entities contains main entities of service.
package entities

import (
	"time"
)

// PostType is provenance of a post.
type PostType string

const (
	// UserPostType ...
	UserPostType PostType = "user"
	// CommunityPostType ...
	CommunityPostType PostType = "community"
	// PagePostType ...
	PagePostType PostType = "page"
)

// ConnectionStatus ...
type ConnectionStatus string

const (
	// PendingConnection ...
	PendingConnection ConnectionStatus = "pending"
	// AcceptedConnection ...
	AcceptedConnection ConnectionStatus = "accepted"
	// DeclinedConnection ...
	DeclinedConnection ConnectionStatus = "declined"
)

// NotificationType ...
type NotificationType string

const (
	// LikeNotification ...
	LikeNotification NotificationType = "like"
	// CommentNotification ...
	CommentNotification NotificationType = "comment"
	// PostNotification ...
	PostNotification NotificationType = "post"
	// MessageNotification ...
	MessageNotification NotificationType = "message"
	// ConnectionNotification ...
	ConnectionNotification NotificationType = "connection"
)

// Profile ...
type Profile struct {
	ID         string
	Name       string
	Headline   string
	AvatarURL  string
	Email      string
	IsVerified bool
	CreatedAt  time.Time
}

// Post ...
type Post struct {
	ID            string
	AuthorID      string
	Content       string
	MediaURLs     []string
	Type          PostType
	SourceID      string
	LikesCount    uint32
	CommentsCount uint32
	SharesCount   uint32
	ViewsCount    uint64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Comment ...
type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

// Connection ...
type Connection struct {
	ID          string
	RequesterID string
	ReceiverID  string
	Status      ConnectionStatus
	CreatedAt   time.Time
}

// CommunityMembership ...
type CommunityMembership struct {
	CommunityID string
	UserID      string
	Role        string
	CreatedAt   time.Time
}

// Notification ...
type Notification struct {
	ID          string
	RecipientID string
	SenderID    string
	Type        NotificationType
	Title       string
	Content     string
	Data        map[string]string
	IsRead      bool
	CreatedAt   time.Time
}

// Conversation ...
type Conversation struct {
	ID             string
	ParticipantIDs []string
	LastMessageID  string
	LastMessageAt  time.Time
	CreatedAt      time.Time
}

// MessageType ...
type MessageType string

const (
	// TextMessage ...
	TextMessage MessageType = "text"
	// MediaMessage ...
	MediaMessage MessageType = "media"
)

// Message ...
type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	Content        string
	MediaURL       string
	Type           MessageType
	CreatedAt      time.Time
}
