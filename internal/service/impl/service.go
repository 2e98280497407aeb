// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/linkhub-net/linkhub/internal/entities"
	"github.com/linkhub-net/linkhub/internal/filestore"
	"github.com/linkhub-net/linkhub/internal/service"
	"github.com/linkhub-net/linkhub/internal/storage"
)

var log = logrus.WithField("layer", "service")

const maxPostContentLength = 3000
const maxPostMediaCount = 10
const maxCommentContentLength = 1000
const maxMessageContentLength = 5000

type srv struct {
	s  storage.Storage
	fs filestore.Storage
	n  service.Notifier
}

// New creates new instance of service. notifier may be nil.
func New(s storage.Storage, fs filestore.Storage, n service.Notifier) service.Service {
	return srv{
		s:  s,
		fs: fs,
		n:  n,
	}
}

func (s srv) GetFeed(ctx context.Context, p *service.FeedParams) (*service.Feed, error) {
	page, limit := clampPage(p.Page, p.Limit)

	branches, err := s.feedBranches(ctx, p)
	if err != nil {
		return nil, err
	}

	lp := storage.ListPostsParams{
		Branches: branches,
		Limit:    limit,
		Offset:   uint64(page-1) * uint64(limit),
	}

	posts, err := s.s.ListPosts(ctx, &lp)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	// The count runs over the same predicate but not in the same snapshot,
	// so the total may drift under concurrent writes.
	total, err := s.s.CountPosts(ctx, &lp)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	views, err := s.assemblePostViews(ctx, p.RequestedBy, posts)
	if err != nil {
		return nil, err
	}

	// Best-effort view counting, a failure never fails the feed request.
	if err := s.s.AddPostViews(ctx, postIDs(posts)...); err != nil {
		log.WithError(err).Error("failed to increment view counters")
	}

	return &service.Feed{
		Posts:      views,
		Pagination: paginate(page, limit, total),
	}, nil
}

func (s srv) feedBranches(ctx context.Context, p *service.FeedParams) ([]storage.PostsBranch, error) {
	switch p.Type {
	case service.ConnectionsFeedType:
		authors, err := s.connectionAuthors(ctx, p.RequestedBy)
		if err != nil {
			return nil, err
		}

		return []storage.PostsBranch{{AuthorIDs: authors}}, nil
	case service.CommunityFeedType:
		// a request without a community is as unauthorized as one for a
		// community the requester is not in
		if p.SourceID == "" {
			return nil, service.ErrNotCommunityMember
		}

		ok, err := s.s.IsCommunityMember(ctx, p.SourceID, p.RequestedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
		if !ok {
			return nil, service.ErrNotCommunityMember
		}

		return []storage.PostsBranch{{
			Type:      entities.CommunityPostType,
			SourceIDs: []string{p.SourceID},
		}}, nil
	case service.AllFeedType, "":
		authors, err := s.connectionAuthors(ctx, p.RequestedBy)
		if err != nil {
			return nil, err
		}

		branches := []storage.PostsBranch{{
			Type:      entities.UserPostType,
			AuthorIDs: authors,
		}}

		communities, err := s.s.GetCommunityIDs(ctx, p.RequestedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to get community memberships: %w", err)
		}

		// An empty community set must not poison the whole predicate, the
		// branch is simply left out.
		if len(communities) > 0 {
			branches = append(branches, storage.PostsBranch{
				Type:      entities.CommunityPostType,
				SourceIDs: communities,
			})
		}

		return branches, nil
	default:
		return nil, fmt.Errorf("%w: invalid feed type", service.ErrInvalidRequest)
	}
}

// connectionAuthors returns accepted peers plus the requester themselves.
func (s srv) connectionAuthors(ctx context.Context, userID string) ([]string, error) {
	peers, err := s.s.GetConnectedPeers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get connections: %w", err)
	}

	return append(peers, userID), nil
}

func (s srv) assemblePostViews(ctx context.Context, requestedBy string, posts []*entities.Post) ([]*service.PostView, error) {
	ids := postIDs(posts)

	authorIDs := make([]string, len(posts))
	for i, p := range posts {
		authorIDs[i] = p.AuthorID
	}

	profiles, err := s.s.GetProfiles(ctx, authorIDs...)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	byID := make(map[string]*entities.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	liked, err := s.s.GetLikes(ctx, requestedBy, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}

	comments, err := s.s.GetRecentComments(ctx, service.RecentCommentsLimit, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent comments: %w", err)
	}

	out := make([]*service.PostView, len(posts))
	for i, p := range posts {
		v := service.PostView{
			Post:           *p,
			UserLiked:      liked[p.ID],
			RecentComments: comments[p.ID],
		}
		if a, ok := byID[p.AuthorID]; ok {
			v.Author = *a
		}
		out[i] = &v
	}

	return out, nil
}

func (s srv) CreatePost(ctx context.Context, p *service.CreatePostParams) (*service.PostView, error) {
	content := strings.TrimSpace(p.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: post content cannot be empty", service.ErrInvalidRequest)
	}
	if len(p.Content) > maxPostContentLength {
		return nil, fmt.Errorf("%w: post content too long (max %d characters)", service.ErrInvalidRequest, maxPostContentLength)
	}
	if len(p.MediaURLs) > maxPostMediaCount {
		return nil, fmt.Errorf("%w: too many media files (max %d)", service.ErrInvalidRequest, maxPostMediaCount)
	}

	postType := p.Type
	if postType == "" {
		postType = entities.UserPostType
	}

	if postType == entities.CommunityPostType {
		if p.SourceID == "" {
			return nil, fmt.Errorf("%w: source_id is required for community posts", service.ErrInvalidRequest)
		}

		ok, err := s.s.IsCommunityMember(ctx, p.SourceID, p.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
		if !ok {
			return nil, service.ErrNotCommunityMember
		}
	}

	now := time.Now()
	post := entities.Post{
		ID:        uuid.NewString(),
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		MediaURLs: p.MediaURLs,
		Type:      postType,
		SourceID:  p.SourceID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.s.CreatePost(ctx, &post); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	author, err := s.s.GetProfile(ctx, p.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get author profile: %w", err)
	}

	if postType == entities.UserPostType {
		s.notifyConnectionsAboutPost(ctx, &post, author)
	}

	return &service.PostView{
		Post:   post,
		Author: *author,
	}, nil
}

func (s srv) notifyConnectionsAboutPost(ctx context.Context, post *entities.Post, author *entities.Profile) {
	peers, err := s.s.GetConnectedPeers(ctx, post.AuthorID)
	if err != nil {
		log.WithError(err).Error("failed to get connections for post fan-out")
		return
	}

	nn := make([]*entities.Notification, len(peers))
	for i, peer := range peers {
		nn[i] = &entities.Notification{
			ID:          uuid.NewString(),
			RecipientID: peer,
			SenderID:    post.AuthorID,
			Type:        entities.PostNotification,
			Title:       "New post",
			Content:     fmt.Sprintf("%s shared a new post", author.Name),
			Data:        map[string]string{"post_id": post.ID},
			CreatedAt:   time.Now(),
		}
	}

	s.createNotifications(ctx, author, nn...)
}

// createNotifications inserts and delivers notifications; failures are
// logged and never returned.
func (s srv) createNotifications(ctx context.Context, sender *entities.Profile, nn ...*entities.Notification) {
	if len(nn) == 0 {
		return
	}

	if err := s.s.CreateNotifications(ctx, nn...); err != nil {
		log.WithError(err).Error("failed to create notifications")
		return
	}

	if s.n == nil {
		return
	}

	for _, n := range nn {
		out := storage.Notification{Notification: *n}
		if sender != nil {
			out.Sender = *sender
		}
		s.n.Notify(&out)
	}
}

func (s srv) GetPost(ctx context.Context, requestedBy, id string) (*service.PostView, error) {
	post, err := s.s.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	views, err := s.assemblePostViews(ctx, requestedBy, []*entities.Post{post})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

func (s srv) DeletePost(ctx context.Context, id, authorID string) error {
	if err := s.s.DeletePost(ctx, id, authorID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

func (s srv) ToggleLike(ctx context.Context, postID, userID string) (*service.LikeResult, error) {
	post, err := s.s.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	var res service.LikeResult

	// Single transaction instead of check-then-act: the unique (post, user)
	// pair and the recount keep the counter equal to the row count.
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		deleted, err := tx.DeleteLike(ctx, postID, userID)
		if err != nil {
			return fmt.Errorf("failed to delete like: %w", err)
		}

		if !deleted {
			if _, err := tx.CreateLike(ctx, postID, userID); err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
			res.Liked = true
		}

		count, err := tx.RecountPostLikes(ctx, postID)
		if err != nil {
			return fmt.Errorf("failed to recount likes: %w", err)
		}
		res.LikesCount = count

		return nil
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}

	if res.Liked && post.AuthorID != userID {
		liker, err := s.s.GetProfile(ctx, userID)
		if err != nil {
			log.WithError(err).Error("failed to get liker profile")
			liker = &entities.Profile{ID: userID, Name: "Someone"}
		}

		s.createNotifications(ctx, liker, &entities.Notification{
			ID:          uuid.NewString(),
			RecipientID: post.AuthorID,
			SenderID:    userID,
			Type:        entities.LikeNotification,
			Title:       "New like",
			Content:     fmt.Sprintf("%s liked your post", liker.Name),
			Data:        map[string]string{"post_id": postID},
			CreatedAt:   time.Now(),
		})
	}

	return &res, nil
}

func (s srv) CreateComment(ctx context.Context, p *service.CreateCommentParams) (*service.CommentResult, error) {
	content := strings.TrimSpace(p.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content cannot be empty", service.ErrInvalidRequest)
	}
	if len(p.Content) > maxCommentContentLength {
		return nil, fmt.Errorf("%w: comment content too long (max %d characters)", service.ErrInvalidRequest, maxCommentContentLength)
	}

	post, err := s.s.GetPost(ctx, p.PostID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	comment := entities.Comment{
		ID:        uuid.NewString(),
		PostID:    p.PostID,
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		CreatedAt: time.Now(),
	}

	var count uint32

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.CreateComment(ctx, &comment); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		count, err = tx.IncrementPostComments(ctx, p.PostID)
		if err != nil {
			return fmt.Errorf("failed to increment comments count: %w", err)
		}

		return nil
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}

	author, err := s.s.GetProfile(ctx, p.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get author profile: %w", err)
	}

	if post.AuthorID != p.AuthorID {
		s.createNotifications(ctx, author, &entities.Notification{
			ID:          uuid.NewString(),
			RecipientID: post.AuthorID,
			SenderID:    p.AuthorID,
			Type:        entities.CommentNotification,
			Title:       "New comment",
			Content:     fmt.Sprintf("%s commented on your post", author.Name),
			Data:        map[string]string{"post_id": p.PostID, "comment_id": comment.ID},
			CreatedAt:   time.Now(),
		})
	}

	return &service.CommentResult{
		Comment: storage.Comment{
			Comment: comment,
			Author:  *author,
		},
		CommentsCount: count,
	}, nil
}

func (s srv) ListNotifications(ctx context.Context, p *service.NotificationsParams) (*service.Notifications, error) {
	page, limit := clampPage(p.Page, p.Limit)

	nn, err := s.s.ListNotifications(ctx, &storage.ListNotificationsParams{
		RecipientID: p.RecipientID,
		UnreadOnly:  p.UnreadOnly,
		Limit:       limit,
		Offset:      uint64(page-1) * uint64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.s.CountNotifications(ctx, p.RecipientID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	total, err := s.s.CountNotifications(ctx, p.RecipientID, p.UnreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	return &service.Notifications{
		Notifications: nn,
		UnreadCount:   unread,
		Pagination:    paginate(page, limit, total),
	}, nil
}

func (s srv) MarkNotificationsRead(ctx context.Context, recipientID string, ids ...string) error {
	if err := s.s.MarkNotificationsRead(ctx, recipientID, ids...); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

func (s srv) RequestConnection(ctx context.Context, requesterID, receiverID string) (*entities.Connection, error) {
	if requesterID == receiverID {
		return nil, fmt.Errorf("%w: cannot connect to yourself", service.ErrInvalidRequest)
	}

	if _, err := s.s.GetProfile(ctx, receiverID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get receiver profile: %w", err)
	}

	conn := entities.Connection{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		ReceiverID:  receiverID,
		Status:      entities.PendingConnection,
		CreatedAt:   time.Now(),
	}

	if err := s.s.CreateConnection(ctx, &conn); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, service.ErrAlreadyExists
		case errors.Is(err, storage.ErrNotFound):
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	requester, err := s.s.GetProfile(ctx, requesterID)
	if err != nil {
		log.WithError(err).Error("failed to get requester profile")
		requester = &entities.Profile{ID: requesterID, Name: "Someone"}
	}

	s.createNotifications(ctx, requester, &entities.Notification{
		ID:          uuid.NewString(),
		RecipientID: receiverID,
		SenderID:    requesterID,
		Type:        entities.ConnectionNotification,
		Title:       "Connection request",
		Content:     fmt.Sprintf("%s wants to connect", requester.Name),
		Data:        map[string]string{"connection_id": conn.ID},
		CreatedAt:   time.Now(),
	})

	return &conn, nil
}

func (s srv) RespondConnection(ctx context.Context, connectionID, userID string, accept bool) (*entities.Connection, error) {
	conn, err := s.s.GetConnection(ctx, connectionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}

	if conn.ReceiverID != userID {
		return nil, service.ErrForbidden
	}

	if conn.Status != entities.PendingConnection {
		return nil, fmt.Errorf("%w: connection already responded", service.ErrInvalidRequest)
	}

	status := entities.DeclinedConnection
	if accept {
		status = entities.AcceptedConnection
	}

	if err := s.s.SetConnectionStatus(ctx, connectionID, status); err != nil {
		return nil, fmt.Errorf("failed to set connection status: %w", err)
	}

	conn.Status = status

	return conn, nil
}

func (s srv) SendMessage(ctx context.Context, p *service.SendMessageParams) (*service.MessageResult, error) {
	if p.ConversationID == "" && p.RecipientID == "" {
		return nil, fmt.Errorf("%w: either recipient_id or conversation_id is required", service.ErrInvalidRequest)
	}
	if p.Content == "" && p.MediaURL == "" {
		return nil, fmt.Errorf("%w: message content or media is required", service.ErrInvalidRequest)
	}
	if len(p.Content) > maxMessageContentLength {
		return nil, fmt.Errorf("%w: message content too long (max %d characters)", service.ErrInvalidRequest, maxMessageContentLength)
	}

	conversationID := p.ConversationID

	if conversationID == "" {
		if p.RecipientID == p.SenderID {
			return nil, fmt.Errorf("%w: cannot send messages to yourself", service.ErrInvalidRequest)
		}

		if _, err := s.s.GetProfile(ctx, p.RecipientID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, service.ErrNotFound
			}
			return nil, fmt.Errorf("failed to get recipient profile: %w", err)
		}

		conv, err := s.s.FindConversation(ctx, p.SenderID, p.RecipientID)
		switch {
		case err == nil:
			conversationID = conv.ID
		case errors.Is(err, storage.ErrNotFound):
			conv := entities.Conversation{
				ID:             uuid.NewString(),
				ParticipantIDs: []string{p.SenderID, p.RecipientID},
				CreatedAt:      time.Now(),
			}
			if err := s.s.CreateConversation(ctx, &conv); err != nil {
				return nil, fmt.Errorf("failed to create conversation: %w", err)
			}
			conversationID = conv.ID
		default:
			return nil, fmt.Errorf("failed to find conversation: %w", err)
		}
	}

	conv, err := s.s.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	if !containsString(conv.ParticipantIDs, p.SenderID) {
		return nil, service.ErrNotParticipant
	}

	messageType := entities.TextMessage
	if p.MediaURL != "" {
		messageType = entities.MediaMessage
	}

	msg := entities.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       p.SenderID,
		Content:        p.Content,
		MediaURL:       p.MediaURL,
		Type:           messageType,
		CreatedAt:      time.Now(),
	}

	if err := s.s.CreateMessage(ctx, &msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if err := s.s.SetConversationLastMessage(ctx, conversationID, msg.ID, msg.CreatedAt); err != nil {
		log.WithError(err).Error("failed to update conversation last message")
	}

	sender, err := s.s.GetProfile(ctx, p.SenderID)
	if err != nil {
		log.WithError(err).Error("failed to get sender profile")
		sender = &entities.Profile{ID: p.SenderID, Name: "Someone"}
	}

	nn := make([]*entities.Notification, 0, len(conv.ParticipantIDs)-1)
	for _, participant := range conv.ParticipantIDs {
		if participant == p.SenderID {
			continue
		}
		nn = append(nn, &entities.Notification{
			ID:          uuid.NewString(),
			RecipientID: participant,
			SenderID:    p.SenderID,
			Type:        entities.MessageNotification,
			Title:       "New message",
			Content:     fmt.Sprintf("%s sent you a message", sender.Name),
			Data:        map[string]string{"conversation_id": conversationID, "message_id": msg.ID},
			CreatedAt:   time.Now(),
		})
	}
	s.createNotifications(ctx, sender, nn...)

	return &service.MessageResult{
		Message: storage.Message{
			Message: msg,
			Sender:  *sender,
		},
		ConversationID: conversationID,
	}, nil
}

func (s srv) ListConversations(ctx context.Context, userID string) ([]*entities.Conversation, error) {
	cc, err := s.s.ListConversations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return cc, nil
}

func (s srv) ListMessages(ctx context.Context, p *service.MessagesParams) (*service.Messages, error) {
	conv, err := s.s.GetConversation(ctx, p.ConversationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	if !containsString(conv.ParticipantIDs, p.UserID) {
		return nil, service.ErrNotParticipant
	}

	page, limit := clampPage(p.Page, p.Limit)

	mm, err := s.s.ListMessages(ctx, &storage.ListMessagesParams{
		ConversationID: p.ConversationID,
		Limit:          limit,
		Offset:         uint64(page-1) * uint64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	total, err := s.s.CountMessages(ctx, p.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	return &service.Messages{
		Messages:   mm,
		Pagination: paginate(page, limit, total),
	}, nil
}

func (s srv) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	p, err := s.s.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (s srv) SetProfile(ctx context.Context, p *entities.Profile) error {
	if err := s.s.SetProfile(ctx, p); err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}

	return nil
}

func (s srv) UploadFile(ctx context.Context, p *service.UploadFileParams) (*service.Upload, error) {
	rule, err := filestore.Validate(p.Bucket, p.ContentType, p.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidRequest, err)
	}

	path := fmt.Sprintf("%s/%d_%s%s",
		p.UserID, time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(p.FileName))

	if err := s.fs.Save(ctx, p.Bucket, path, io.LimitReader(p.Body, p.Size)); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	out := service.Upload{
		Path:     path,
		Bucket:   p.Bucket,
		FileName: p.FileName,
		FileSize: p.Size,
		FileType: p.ContentType,
	}

	if rule.Public {
		out.PublicURL = s.fs.PublicURL(p.Bucket, path)
	}

	return &out, nil
}

func (s srv) GetPlatformStats(ctx context.Context) (*storage.PlatformStats, error) {
	stats, err := s.s.GetPlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform stats: %w", err)
	}

	return stats, nil
}

func clampPage(page uint32, limit uint16) (uint32, uint16) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = service.DefaultFeedLimit
	}
	if limit > service.MaxFeedLimit {
		limit = service.MaxFeedLimit
	}

	return page, limit
}

func paginate(page uint32, limit uint16, total uint64) service.Pagination {
	return service.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + uint64(limit) - 1) / uint64(limit),
	}
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}

	return false
}

func postIDs(posts []*entities.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}

	return out
}
