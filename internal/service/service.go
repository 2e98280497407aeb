// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"io"

	"github.com/linkhub-net/linkhub/internal/entities"
	"github.com/linkhub-net/linkhub/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrNotFound ...
var ErrNotFound = errors.New("not found")

// ErrInvalidRequest is returned when request validation fails.
var ErrInvalidRequest = errors.New("invalid request")

// ErrNotCommunityMember is returned when the requester has no membership in
// the requested community.
var ErrNotCommunityMember = errors.New("not a member of this community")

// ErrNotParticipant is returned when the requester does not participate in
// the conversation.
var ErrNotParticipant = errors.New("not a participant of this conversation")

// ErrForbidden ...
var ErrForbidden = errors.New("forbidden")

// ErrAlreadyExists ...
var ErrAlreadyExists = errors.New("already exists")

// FeedType ...
type FeedType string

const (
	// AllFeedType ...
	AllFeedType FeedType = "all"
	// ConnectionsFeedType ...
	ConnectionsFeedType FeedType = "connections"
	// CommunityFeedType ...
	CommunityFeedType FeedType = "community"
)

// MaxFeedLimit is the biggest page size a client can request.
const MaxFeedLimit = 50

// DefaultFeedLimit ...
const DefaultFeedLimit = 20

// RecentCommentsLimit is how many most-recent comments are attached to
// every feed post.
const RecentCommentsLimit = 3

// FeedParams ...
type FeedParams struct {
	RequestedBy string
	Type        FeedType
	SourceID    string
	Page        uint32
	Limit       uint16
}

// Pagination ...
type Pagination struct {
	Page       uint32
	Limit      uint16
	Total      uint64
	TotalPages uint64
}

// PostView is a post assembled with its author, the requester's like flag
// and a capped window of recent comments.
type PostView struct {
	entities.Post
	Author         entities.Profile
	UserLiked      bool
	RecentComments []*storage.Comment
}

// Feed ...
type Feed struct {
	Posts      []*PostView
	Pagination Pagination
}

// CreatePostParams ...
type CreatePostParams struct {
	AuthorID  string
	Content   string
	MediaURLs []string
	Type      entities.PostType
	SourceID  string
}

// LikeResult ...
type LikeResult struct {
	Liked      bool
	LikesCount uint32
}

// CreateCommentParams ...
type CreateCommentParams struct {
	PostID   string
	AuthorID string
	Content  string
}

// CommentResult ...
type CommentResult struct {
	Comment       storage.Comment
	CommentsCount uint32
}

// NotificationsParams ...
type NotificationsParams struct {
	RecipientID string
	UnreadOnly  bool
	Page        uint32
	Limit       uint16
}

// Notifications ...
type Notifications struct {
	Notifications []*storage.Notification
	UnreadCount   uint64
	Pagination    Pagination
}

// SendMessageParams ...
// Either ConversationID or RecipientID must be set, and either Content or
// MediaURL.
type SendMessageParams struct {
	SenderID       string
	ConversationID string
	RecipientID    string
	Content        string
	MediaURL       string
}

// MessageResult ...
type MessageResult struct {
	Message        storage.Message
	ConversationID string
}

// MessagesParams ...
type MessagesParams struct {
	UserID         string
	ConversationID string
	Page           uint32
	Limit          uint16
}

// Messages ...
type Messages struct {
	Messages   []*storage.Message
	Pagination Pagination
}

// UploadFileParams ...
type UploadFileParams struct {
	UserID      string
	Bucket      string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Upload ...
type Upload struct {
	Path      string
	Bucket    string
	PublicURL string
	FileName  string
	FileSize  int64
	FileType  string
}

// Notifier delivers a freshly created notification to its recipient if they
// are listening. Delivery is best-effort.
type Notifier interface {
	Notify(n *storage.Notification)
}

// Service ...
type Service interface {
	GetFeed(ctx context.Context, p *FeedParams) (*Feed, error)

	CreatePost(ctx context.Context, p *CreatePostParams) (*PostView, error)
	GetPost(ctx context.Context, requestedBy, id string) (*PostView, error)
	DeletePost(ctx context.Context, id, authorID string) error

	ToggleLike(ctx context.Context, postID, userID string) (*LikeResult, error)
	CreateComment(ctx context.Context, p *CreateCommentParams) (*CommentResult, error)

	ListNotifications(ctx context.Context, p *NotificationsParams) (*Notifications, error)
	MarkNotificationsRead(ctx context.Context, recipientID string, ids ...string) error

	RequestConnection(ctx context.Context, requesterID, receiverID string) (*entities.Connection, error)
	RespondConnection(ctx context.Context, connectionID, userID string, accept bool) (*entities.Connection, error)

	SendMessage(ctx context.Context, p *SendMessageParams) (*MessageResult, error)
	ListConversations(ctx context.Context, userID string) ([]*entities.Conversation, error)
	ListMessages(ctx context.Context, p *MessagesParams) (*Messages, error)

	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	SetProfile(ctx context.Context, p *entities.Profile) error

	UploadFile(ctx context.Context, p *UploadFileParams) (*Upload, error)

	GetPlatformStats(ctx context.Context) (*storage.PlatformStats, error)
}
