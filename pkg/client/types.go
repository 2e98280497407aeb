package client

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

// Feed ...
type Feed struct {
	Posts      []*Post    `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// LikeState is the server's answer to a like toggle.
type LikeState struct {
	Liked      bool   `json:"liked"`
	LikesCount uint32 `json:"likes_count"`
}

// CreatePostParams ...
type CreatePostParams struct {
	Content   string   `json:"content"`
	MediaURLs []string `json:"media_urls,omitempty"`
	PostType  string   `json:"post_type,omitempty"`
	SourceID  string   `json:"source_id,omitempty"`
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

// Notifications ...
type Notifications struct {
	Notifications []*Notification `json:"notifications"`
	UnreadCount   uint64          `json:"unread_count"`
	Pagination    Pagination      `json:"pagination"`
}

// SendMessageParams ...
type SendMessageParams struct {
	ConversationID string `json:"conversation_id,omitempty"`
	RecipientID    string `json:"recipient_id,omitempty"`
	Content        string `json:"content,omitempty"`
	MediaURL       string `json:"media_url,omitempty"`
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

// SentMessage ...
type SentMessage struct {
	Message        Message `json:"message"`
	ConversationID string  `json:"conversation_id"`
}

// FeedParams ...
type FeedParams struct {
	Type     string
	SourceID string
	Page     uint32
	Limit    uint16
}

type createPostResponse struct {
	Post Post `json:"post"`
}

type createCommentRequest struct {
	Content string `json:"content"`
}

type createCommentResponse struct {
	Comment       Comment `json:"comment"`
	CommentsCount uint32  `json:"comments_count"`
}
