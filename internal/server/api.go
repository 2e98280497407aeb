package server

import (
	"github.com/linkhub-net/linkhub/internal/entities"
	"github.com/linkhub-net/linkhub/internal/service"
	"github.com/linkhub-net/linkhub/internal/storage"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Pagination ...
type Pagination struct {
	Page       uint32 `json:"page"`
	Limit      uint16 `json:"limit"`
	Total      uint64 `json:"total"`
	TotalPages uint64 `json:"total_pages"`
}

// ProfileSummary ...
type ProfileSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Headline   string `json:"headline,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	IsVerified bool   `json:"is_verified"`
}

// Profile ...
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Headline   string `json:"headline"`
	AvatarURL  string `json:"avatar_url"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
	CreatedAt  int64  `json:"created_at"`
}

// Comment ...
type Comment struct {
	ID        string         `json:"id"`
	PostID    string         `json:"post_id"`
	Content   string         `json:"content"`
	Author    ProfileSummary `json:"author"`
	CreatedAt int64          `json:"created_at"`
}

// Post ...
type Post struct {
	ID             string         `json:"id"`
	Content        string         `json:"content"`
	MediaURLs      []string       `json:"media_urls"`
	PostType       string         `json:"post_type"`
	SourceID       string         `json:"source_id,omitempty"`
	Author         ProfileSummary `json:"author"`
	LikesCount     uint32         `json:"likes_count"`
	CommentsCount  uint32         `json:"comments_count"`
	SharesCount    uint32         `json:"shares_count"`
	ViewsCount     uint64         `json:"views_count"`
	UserLiked      bool           `json:"user_liked"`
	RecentComments []Comment      `json:"recent_comments"`
	CreatedAt      int64          `json:"created_at"`
	UpdatedAt      int64          `json:"updated_at"`
}

// FeedResponse ...
// swagger:model
type FeedResponse struct {
	Posts      []*Post    `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// CreatePostRequest ...
type CreatePostRequest struct {
	Content   string   `json:"content"`
	MediaURLs []string `json:"media_urls"`
	PostType  string   `json:"post_type"`
	SourceID  string   `json:"source_id"`
}

// CreatePostResponse ...
type CreatePostResponse struct {
	Post Post `json:"post"`
}

// GetPostResponse ...
type GetPostResponse struct {
	Post Post `json:"post"`
}

// ToggleLikeResponse ...
type ToggleLikeResponse struct {
	Liked      bool   `json:"liked"`
	LikesCount uint32 `json:"likes_count"`
}

// CreateCommentRequest ...
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CreateCommentResponse ...
type CreateCommentResponse struct {
	Comment       Comment `json:"comment"`
	CommentsCount uint32  `json:"comments_count"`
}

// Notification ...
type Notification struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Data      map[string]string `json:"data,omitempty"`
	IsRead    bool              `json:"is_read"`
	Sender    ProfileSummary    `json:"sender"`
	CreatedAt int64             `json:"created_at"`
}

// NotificationsResponse ...
type NotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
	UnreadCount   uint64          `json:"unread_count"`
	Pagination    Pagination      `json:"pagination"`
}

// MarkNotificationsReadRequest ...
// Empty ids means all.
type MarkNotificationsReadRequest struct {
	IDs []string `json:"ids"`
}

// CreateConnectionRequest ...
type CreateConnectionRequest struct {
	ReceiverID string `json:"receiver_id"`
}

// RespondConnectionRequest ...
type RespondConnectionRequest struct {
	Action string `json:"action"`
}

// Connection ...
type Connection struct {
	ID          string `json:"id"`
	RequesterID string `json:"requester_id"`
	ReceiverID  string `json:"receiver_id"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"created_at"`
}

// SendMessageRequest ...
type SendMessageRequest struct {
	ConversationID string `json:"conversation_id"`
	RecipientID    string `json:"recipient_id"`
	Content        string `json:"content"`
	MediaURL       string `json:"media_url"`
}

// Message ...
type Message struct {
	ID             string         `json:"id"`
	ConversationID string         `json:"conversation_id"`
	Content        string         `json:"content,omitempty"`
	MediaURL       string         `json:"media_url,omitempty"`
	MessageType    string         `json:"message_type"`
	Sender         ProfileSummary `json:"sender"`
	CreatedAt      int64          `json:"created_at"`
}

// SendMessageResponse ...
type SendMessageResponse struct {
	Message        Message `json:"message"`
	ConversationID string  `json:"conversation_id"`
}

// Conversation ...
type Conversation struct {
	ID             string   `json:"id"`
	ParticipantIDs []string `json:"participant_ids"`
	LastMessageID  string   `json:"last_message_id,omitempty"`
	LastMessageAt  int64    `json:"last_message_at,omitempty"`
	CreatedAt      int64    `json:"created_at"`
}

// ConversationsResponse ...
type ConversationsResponse struct {
	Conversations []*Conversation `json:"conversations"`
}

// MessagesResponse ...
type MessagesResponse struct {
	Messages   []*Message `json:"messages"`
	Pagination Pagination `json:"pagination"`
}

// SetProfileRequest ...
type SetProfileRequest struct {
	Name      string `json:"name"`
	Headline  string `json:"headline"`
	AvatarURL string `json:"avatar_url"`
	Email     string `json:"email"`
}

// UploadResponse ...
type UploadResponse struct {
	Path      string `json:"path"`
	Bucket    string `json:"bucket"`
	PublicURL string `json:"public_url,omitempty"`
	FileName  string `json:"file_name"`
	FileSize  int64  `json:"file_size"`
	FileType  string `json:"file_type"`
}

// StatsResponse ...
type StatsResponse struct {
	Profiles uint64 `json:"profiles"`
	Posts    uint64 `json:"posts"`
	Likes    uint64 `json:"likes"`
	Comments uint64 `json:"comments"`
}

func toAPIPagination(p service.Pagination) Pagination {
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func toAPIProfileSummary(p entities.Profile) ProfileSummary {
	return ProfileSummary{
		ID:         p.ID,
		Name:       p.Name,
		Headline:   p.Headline,
		AvatarURL:  p.AvatarURL,
		IsVerified: p.IsVerified,
	}
}

func toAPIProfile(p *entities.Profile) *Profile {
	if p == nil {
		return nil
	}

	return &Profile{
		ID:         p.ID,
		Name:       p.Name,
		Headline:   p.Headline,
		AvatarURL:  p.AvatarURL,
		Email:      p.Email,
		IsVerified: p.IsVerified,
		CreatedAt:  p.CreatedAt.Unix(),
	}
}

func toAPIComment(c *storage.Comment) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		Author:    toAPIProfileSummary(c.Author),
		CreatedAt: c.CreatedAt.Unix(),
	}
}

func toAPIPost(v *service.PostView) *Post {
	if v == nil {
		return nil
	}

	comments := make([]Comment, len(v.RecentComments))
	for i, c := range v.RecentComments {
		comments[i] = toAPIComment(c)
	}

	media := v.MediaURLs
	if media == nil {
		media = []string{}
	}

	return &Post{
		ID:             v.ID,
		Content:        v.Content,
		MediaURLs:      media,
		PostType:       string(v.Type),
		SourceID:       v.SourceID,
		Author:         toAPIProfileSummary(v.Author),
		LikesCount:     v.LikesCount,
		CommentsCount:  v.CommentsCount,
		SharesCount:    v.SharesCount,
		ViewsCount:     v.ViewsCount,
		UserLiked:      v.UserLiked,
		RecentComments: comments,
		CreatedAt:      v.CreatedAt.Unix(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
}

func newFeedResponse(f *service.Feed) FeedResponse {
	out := FeedResponse{
		Posts:      make([]*Post, len(f.Posts)),
		Pagination: toAPIPagination(f.Pagination),
	}

	for i, v := range f.Posts {
		out.Posts[i] = toAPIPost(v)
	}

	return out
}

func toAPINotification(n *storage.Notification) *Notification {
	return &Notification{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Content:   n.Content,
		Data:      n.Data,
		IsRead:    n.IsRead,
		Sender:    toAPIProfileSummary(n.Sender),
		CreatedAt: n.CreatedAt.Unix(),
	}
}

func toAPIConnection(c *entities.Connection) Connection {
	return Connection{
		ID:          c.ID,
		RequesterID: c.RequesterID,
		ReceiverID:  c.ReceiverID,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt.Unix(),
	}
}

func toAPIMessage(m *storage.Message) Message {
	return Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Content:        m.Content,
		MediaURL:       m.MediaURL,
		MessageType:    string(m.Type),
		Sender:         toAPIProfileSummary(m.Sender),
		CreatedAt:      m.CreatedAt.Unix(),
	}
}

func toAPIConversation(c *entities.Conversation) *Conversation {
	out := Conversation{
		ID:             c.ID,
		ParticipantIDs: c.ParticipantIDs,
		LastMessageID:  c.LastMessageID,
		CreatedAt:      c.CreatedAt.Unix(),
	}

	if !c.LastMessageAt.IsZero() {
		out.LastMessageAt = c.LastMessageAt.Unix()
	}

	return &out
}
