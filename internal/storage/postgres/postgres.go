// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/linkhub-net/linkhub/internal/entities"
	"github.com/linkhub-net/linkhub/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx within tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

type jsonMap map[string]string

func (m jsonMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *jsonMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}

	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unexpected jsonb source type %T", src)
	}

	return json.Unmarshal(b, m)
}

type profileDTO struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Headline   string    `db:"headline"`
	AvatarURL  string    `db:"avatar_url"`
	Email      string    `db:"email"`
	IsVerified bool      `db:"is_verified"`
	CreatedAt  time.Time `db:"created_at"`
}

type postDTO struct {
	ID            string         `db:"id"`
	AuthorID      string         `db:"author_id"`
	Content       string         `db:"content"`
	MediaURLs     pq.StringArray `db:"media_urls"`
	Type          string         `db:"post_type"`
	SourceID      sql.NullString `db:"source_id"`
	LikesCount    uint32         `db:"likes_count"`
	CommentsCount uint32         `db:"comments_count"`
	SharesCount   uint32         `db:"shares_count"`
	ViewsCount    uint64         `db:"views_count"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type commentDTO struct {
	ID        string    `db:"id"`
	PostID    string    `db:"post_id"`
	AuthorID  string    `db:"author_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type commentWithAuthorDTO struct {
	commentDTO
	AuthorName     string `db:"author_name"`
	AuthorAvatar   string `db:"author_avatar"`
	AuthorHeadline string `db:"author_headline"`
}

type connectionDTO struct {
	ID          string    `db:"id"`
	RequesterID string    `db:"requester_id"`
	ReceiverID  string    `db:"receiver_id"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type notificationDTO struct {
	ID          string    `db:"id"`
	RecipientID string    `db:"recipient_id"`
	SenderID    string    `db:"sender_id"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	Data        jsonMap   `db:"data"`
	IsRead      bool      `db:"is_read"`
	CreatedAt   time.Time `db:"created_at"`
}

type notificationWithSenderDTO struct {
	notificationDTO
	SenderName     string `db:"sender_name"`
	SenderAvatar   string `db:"sender_avatar"`
	SenderHeadline string `db:"sender_headline"`
}

type conversationDTO struct {
	ID             string         `db:"id"`
	ParticipantIDs pq.StringArray `db:"participant_ids"`
	LastMessageID  sql.NullString `db:"last_message_id"`
	LastMessageAt  sql.NullTime   `db:"last_message_at"`
	CreatedAt      time.Time      `db:"created_at"`
}

type messageDTO struct {
	ID             string    `db:"id"`
	ConversationID string    `db:"conversation_id"`
	SenderID       string    `db:"sender_id"`
	Content        string    `db:"content"`
	MediaURL       string    `db:"media_url"`
	Type           string    `db:"message_type"`
	CreatedAt      time.Time `db:"created_at"`
}

type messageWithSenderDTO struct {
	messageDTO
	SenderName   string `db:"sender_name"`
	SenderAvatar string `db:"sender_avatar"`
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, name, headline, avatar_url, email, is_verified, created_at
			FROM profile
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toProfile(&p), nil
}

func (s pg) GetProfiles(ctx context.Context, ids ...string) ([]*entities.Profile, error) {
	ids = stringsUnique(ids)

	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
			SELECT id, name, headline, avatar_url, email, is_verified, created_at
			FROM profile
			WHERE id IN (?)
		`, ids)

	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var pp []*profileDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Profile, len(pp))
	for i, v := range pp {
		out[i] = toProfile(v)
	}

	return out, nil
}

func (s pg) SetProfile(ctx context.Context, p *entities.Profile) error {
	profile := profileDTO{
		ID:         p.ID,
		Name:       p.Name,
		Headline:   p.Headline,
		AvatarURL:  p.AvatarURL,
		Email:      p.Email,
		IsVerified: p.IsVerified,
		CreatedAt:  p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profile(id, name, headline, avatar_url, email, is_verified, created_at)
			VALUES(:id, :name, :headline, :avatar_url, :email, :is_verified, :created_at)
			ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, headline=excluded.headline, avatar_url=excluded.avatar_url, email=excluded.email, is_verified=excluded.is_verified
		`, profile,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetConnectedPeers(ctx context.Context, userID string) ([]string, error) {
	var peers []string

	if err := sqlx.SelectContext(ctx, s.ext, &peers, `
			SELECT CASE WHEN requester_id = $1 THEN receiver_id ELSE requester_id END
			FROM connection
			WHERE (requester_id = $1 OR receiver_id = $1) AND status = 'accepted'
		`, userID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return peers, nil
}

func (s pg) CreateConnection(ctx context.Context, c *entities.Connection) error {
	conn := connectionDTO{
		ID:          c.ID,
		RequesterID: c.RequesterID,
		ReceiverID:  c.ReceiverID,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO connection(id, requester_id, receiver_id, status, created_at)
			VALUES(:id, :requester_id, :receiver_id, :status, :created_at)
		`, conn,
	); err != nil {
		if err, ok := err.(*pq.Error); ok {
			switch err.Code {
			case foreignKeyViolation:
				return storage.ErrNotFound
			case uniqueViolation:
				return storage.ErrAlreadyExists
			}
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetConnection(ctx context.Context, id string) (*entities.Connection, error) {
	var c connectionDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT id, requester_id, receiver_id, status, created_at FROM connection WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Connection{
		ID:          c.ID,
		RequesterID: c.RequesterID,
		ReceiverID:  c.ReceiverID,
		Status:      entities.ConnectionStatus(c.Status),
		CreatedAt:   c.CreatedAt,
	}, nil
}

func (s pg) SetConnectionStatus(ctx context.Context, id string, status entities.ConnectionStatus) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE connection SET status=$2 WHERE id=$1`,
		id, string(status),
	)

	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) GetCommunityIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string

	if err := sqlx.SelectContext(ctx, s.ext, &ids, `
			SELECT community_id FROM community_member WHERE user_id = $1
		`, userID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return ids, nil
}

func (s pg) IsCommunityMember(ctx context.Context, communityID, userID string) (bool, error) {
	var ok bool

	if err := sqlx.GetContext(ctx, s.ext, &ok, `
			SELECT EXISTS(SELECT 1 FROM community_member WHERE community_id = $1 AND user_id = $2)
		`, communityID, userID,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return ok, nil
}

// feedPredicate builds an OR of branch predicates. A branch without any
// condition matches nothing rather than everything.
func feedPredicate(p *storage.ListPostsParams) (string, []interface{}) {
	branches := make([]string, 0, len(p.Branches))
	var args []interface{}

	for _, b := range p.Branches {
		conds := make([]string, 0, 3)

		if b.Type != "" {
			conds = append(conds, "post_type = ?")
			args = append(args, string(b.Type))
		}
		if len(b.AuthorIDs) > 0 {
			conds = append(conds, "author_id IN (?)")
			args = append(args, b.AuthorIDs)
		}
		if len(b.SourceIDs) > 0 {
			conds = append(conds, "source_id IN (?)")
			args = append(args, b.SourceIDs)
		}

		if len(conds) == 0 {
			continue
		}

		branches = append(branches, "("+strings.Join(conds, " AND ")+")")
	}

	if len(branches) == 0 {
		return "FALSE", nil
	}

	return strings.Join(branches, " OR "), args
}

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	pred, args := feedPredicate(p)

	args = append(args, p.Limit, p.Offset)

	query, args, err := sqlx.In(fmt.Sprintf(`
			SELECT id, author_id, content, media_urls, post_type, source_id,
				likes_count, comments_count, shares_count, views_count, created_at, updated_at
			FROM post
			WHERE %s
			ORDER BY created_at DESC, id DESC
			LIMIT ? OFFSET ?
		`, pred), args...)

	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var pp []*postDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, v := range pp {
		out[i] = toPost(v)
	}

	return out, nil
}

func (s pg) CountPosts(ctx context.Context, p *storage.ListPostsParams) (uint64, error) {
	pred, args := feedPredicate(p)

	query, args, err := sqlx.In(fmt.Sprintf(`SELECT COUNT(*) FROM post WHERE %s`, pred), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var c uint64
	if err := sqlx.GetContext(ctx, s.ext, &c, s.ext.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	post := postDTO{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		MediaURLs: p.MediaURLs,
		Type:      string(p.Type),
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
	if post.MediaURLs == nil {
		post.MediaURLs = pq.StringArray{}
	}
	if p.SourceID != "" {
		post.SourceID = sql.NullString{String: p.SourceID, Valid: true}
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(id, author_id, content, media_urls, post_type, source_id, created_at, updated_at)
			VALUES(:id, :author_id, :content, :media_urls, :post_type, :source_id, :created_at, :updated_at)
		`, post,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, author_id, content, media_urls, post_type, source_id,
				likes_count, comments_count, shares_count, views_count, created_at, updated_at
			FROM post
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toPost(&p), nil
}

func (s pg) DeletePost(ctx context.Context, id, authorID string) error {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM post WHERE id=$1 AND author_id=$2`,
		id, authorID,
	)

	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) AddPostViews(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE post SET views_count = views_count + 1 WHERE id = ANY($1)`,
		pq.Array(ids),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetLikes(ctx context.Context, likedBy string, postIDs ...string) (map[string]bool, error) {
	out := make(map[string]bool, len(postIDs))

	if len(postIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
			SELECT post_id FROM "like" WHERE user_id = ? AND post_id IN (?)
		`, likedBy, postIDs)

	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var liked []string
	if err := sqlx.SelectContext(ctx, s.ext, &liked, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, id := range liked {
		out[id] = true
	}

	return out, nil
}

func (s pg) CreateLike(ctx context.Context, postID, userID string) (bool, error) {
	res, err := s.ext.ExecContext(ctx, `
			INSERT INTO "like"(post_id, user_id) VALUES($1, $2) ON CONFLICT DO NOTHING
		`, postID, userID,
	)

	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return false, storage.ErrNotFound
		}

		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()

	return c > 0, nil
}

func (s pg) DeleteLike(ctx context.Context, postID, userID string) (bool, error) {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM "like" WHERE post_id=$1 AND user_id=$2`,
		postID, userID,
	)

	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()

	return c > 0, nil
}

func (s pg) RecountPostLikes(ctx context.Context, postID string) (uint32, error) {
	var c uint32

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			UPDATE post SET likes_count = (SELECT COUNT(*) FROM "like" WHERE post_id = $1)
			WHERE id = $1
			RETURNING likes_count
		`, postID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) CreateComment(ctx context.Context, c *entities.Comment) error {
	comment := commentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO comment(id, post_id, author_id, content, created_at)
			VALUES(:id, :post_id, :author_id, :content, :created_at)
		`, comment,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetRecentComments(ctx context.Context, limit int, postIDs ...string) (map[string][]*storage.Comment, error) {
	out := make(map[string][]*storage.Comment, len(postIDs))

	if len(postIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
			SELECT c.id, c.post_id, c.author_id, c.content, c.created_at,
				p.name AS author_name, p.avatar_url AS author_avatar, p.headline AS author_headline
			FROM (
				SELECT *, ROW_NUMBER() OVER (PARTITION BY post_id ORDER BY created_at DESC, id DESC) AS rn
				FROM comment
				WHERE post_id IN (?)
			) c
			JOIN profile p ON p.id = c.author_id
			WHERE c.rn <= ?
			ORDER BY c.post_id, c.created_at DESC
		`, postIDs, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var cc []*commentWithAuthorDTO
	if err := sqlx.SelectContext(ctx, s.ext, &cc, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, v := range cc {
		out[v.PostID] = append(out[v.PostID], &storage.Comment{
			Comment: entities.Comment{
				ID:        v.ID,
				PostID:    v.PostID,
				AuthorID:  v.AuthorID,
				Content:   v.Content,
				CreatedAt: v.CreatedAt,
			},
			Author: entities.Profile{
				ID:        v.AuthorID,
				Name:      v.AuthorName,
				AvatarURL: v.AuthorAvatar,
				Headline:  v.AuthorHeadline,
			},
		})
	}

	return out, nil
}

func (s pg) IncrementPostComments(ctx context.Context, postID string) (uint32, error) {
	var c uint32

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			UPDATE post SET comments_count = comments_count + 1 WHERE id = $1 RETURNING comments_count
		`, postID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) CreateNotifications(ctx context.Context, nn ...*entities.Notification) error {
	if len(nn) == 0 {
		return nil
	}

	dto := make([]notificationDTO, len(nn))
	for i, v := range nn {
		dto[i] = notificationDTO{
			ID:          v.ID,
			RecipientID: v.RecipientID,
			SenderID:    v.SenderID,
			Type:        string(v.Type),
			Title:       v.Title,
			Content:     v.Content,
			Data:        jsonMap(v.Data),
			IsRead:      v.IsRead,
			CreatedAt:   v.CreatedAt.UTC(),
		}
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO notification(id, recipient_id, sender_id, type, title, content, data, is_read, created_at)
			VALUES(:id, :recipient_id, :sender_id, :type, :title, :content, :data, :is_read, :created_at)
		`, dto,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListNotifications(ctx context.Context, p *storage.ListNotificationsParams) ([]*storage.Notification, error) {
	q := `
		SELECT n.id, n.recipient_id, n.sender_id, n.type, n.title, n.content, n.data, n.is_read, n.created_at,
			p.name AS sender_name, p.avatar_url AS sender_avatar, p.headline AS sender_headline
		FROM notification n
		JOIN profile p ON p.id = n.sender_id
		WHERE n.recipient_id = $1
	`

	if p.UnreadOnly {
		q += ` AND NOT n.is_read`
	}

	q += ` ORDER BY n.created_at DESC, n.id DESC LIMIT $2 OFFSET $3`

	var nn []*notificationWithSenderDTO
	if err := sqlx.SelectContext(ctx, s.ext, &nn, q, p.RecipientID, p.Limit, p.Offset); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.Notification, len(nn))
	for i, v := range nn {
		out[i] = &storage.Notification{
			Notification: entities.Notification{
				ID:          v.ID,
				RecipientID: v.RecipientID,
				SenderID:    v.SenderID,
				Type:        entities.NotificationType(v.Type),
				Title:       v.Title,
				Content:     v.Content,
				Data:        v.Data,
				IsRead:      v.IsRead,
				CreatedAt:   v.CreatedAt,
			},
			Sender: entities.Profile{
				ID:        v.SenderID,
				Name:      v.SenderName,
				AvatarURL: v.SenderAvatar,
				Headline:  v.SenderHeadline,
			},
		}
	}

	return out, nil
}

func (s pg) CountNotifications(ctx context.Context, recipientID string, unreadOnly bool) (uint64, error) {
	q := `SELECT COUNT(*) FROM notification WHERE recipient_id = $1`
	if unreadOnly {
		q += ` AND NOT is_read`
	}

	var c uint64
	if err := sqlx.GetContext(ctx, s.ext, &c, q, recipientID); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) MarkNotificationsRead(ctx context.Context, recipientID string, ids ...string) error {
	if len(ids) == 0 {
		if _, err := s.ext.ExecContext(ctx,
			`UPDATE notification SET is_read=TRUE WHERE recipient_id=$1`, recipientID,
		); err != nil {
			return fmt.Errorf("failed to exec: %w", err)
		}

		return nil
	}

	query, args, err := sqlx.In(
		`UPDATE notification SET is_read=TRUE WHERE recipient_id = ? AND id IN (?)`,
		recipientID, ids,
	)
	if err != nil {
		return fmt.Errorf("failed to construct IN clause: %w", err)
	}

	if _, err := s.ext.ExecContext(ctx, s.ext.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateConversation(ctx context.Context, c *entities.Conversation) error {
	conv := conversationDTO{
		ID:             c.ID,
		ParticipantIDs: c.ParticipantIDs,
		CreatedAt:      c.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO conversation(id, participant_ids, created_at)
			VALUES(:id, :participant_ids, :created_at)
		`, conv,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetConversation(ctx context.Context, id string) (*entities.Conversation, error) {
	var c conversationDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT id, participant_ids, last_message_id, last_message_at, created_at
			FROM conversation
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toConversation(&c), nil
}

func (s pg) FindConversation(ctx context.Context, userID, peerID string) (*entities.Conversation, error) {
	var c conversationDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT id, participant_ids, last_message_id, last_message_at, created_at
			FROM conversation
			WHERE participant_ids @> ARRAY[$1, $2]::uuid[] AND cardinality(participant_ids) = 2
		`, userID, peerID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toConversation(&c), nil
}

func (s pg) ListConversations(ctx context.Context, userID string) ([]*entities.Conversation, error) {
	var cc []*conversationDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT id, participant_ids, last_message_id, last_message_at, created_at
			FROM conversation
			WHERE participant_ids @> ARRAY[$1]::uuid[]
			ORDER BY last_message_at DESC NULLS LAST, created_at DESC
		`, userID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Conversation, len(cc))
	for i, v := range cc {
		out[i] = toConversation(v)
	}

	return out, nil
}

func (s pg) SetConversationLastMessage(ctx context.Context, conversationID, messageID string, at time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE conversation SET last_message_id=$2, last_message_at=$3 WHERE id=$1`,
		conversationID, messageID, at.UTC(),
	)

	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) CreateMessage(ctx context.Context, m *entities.Message) error {
	msg := messageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		MediaURL:       m.MediaURL,
		Type:           string(m.Type),
		CreatedAt:      m.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO message(id, conversation_id, sender_id, content, media_url, message_type, created_at)
			VALUES(:id, :conversation_id, :sender_id, :content, :media_url, :message_type, :created_at)
		`, msg,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListMessages(ctx context.Context, p *storage.ListMessagesParams) ([]*storage.Message, error) {
	var mm []*messageWithSenderDTO

	if err := sqlx.SelectContext(ctx, s.ext, &mm, `
			SELECT m.id, m.conversation_id, m.sender_id, m.content, m.media_url, m.message_type, m.created_at,
				p.name AS sender_name, p.avatar_url AS sender_avatar
			FROM message m
			JOIN profile p ON p.id = m.sender_id
			WHERE m.conversation_id = $1
			ORDER BY m.created_at DESC, m.id DESC
			LIMIT $2 OFFSET $3
		`, p.ConversationID, p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.Message, len(mm))
	for i, v := range mm {
		out[i] = &storage.Message{
			Message: entities.Message{
				ID:             v.ID,
				ConversationID: v.ConversationID,
				SenderID:       v.SenderID,
				Content:        v.Content,
				MediaURL:       v.MediaURL,
				Type:           entities.MessageType(v.Type),
				CreatedAt:      v.CreatedAt,
			},
			Sender: entities.Profile{
				ID:        v.SenderID,
				Name:      v.SenderName,
				AvatarURL: v.SenderAvatar,
			},
		}
	}

	return out, nil
}

func (s pg) CountMessages(ctx context.Context, conversationID string) (uint64, error) {
	var c uint64

	if err := sqlx.GetContext(ctx, s.ext, &c,
		`SELECT COUNT(*) FROM message WHERE conversation_id = $1`, conversationID,
	); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) GetPlatformStats(ctx context.Context) (*storage.PlatformStats, error) {
	var stats struct {
		Profiles uint64 `db:"profiles"`
		Posts    uint64 `db:"posts"`
		Likes    uint64 `db:"likes"`
		Comments uint64 `db:"comments"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &stats, `
			SELECT
				(SELECT COUNT(*) FROM profile) AS profiles,
				(SELECT COUNT(*) FROM post) AS posts,
				(SELECT COUNT(*) FROM "like") AS likes,
				(SELECT COUNT(*) FROM comment) AS comments
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &storage.PlatformStats{
		Profiles: stats.Profiles,
		Posts:    stats.Posts,
		Likes:    stats.Likes,
		Comments: stats.Comments,
	}, nil
}

func toProfile(p *profileDTO) *entities.Profile {
	return &entities.Profile{
		ID:         p.ID,
		Name:       p.Name,
		Headline:   p.Headline,
		AvatarURL:  p.AvatarURL,
		Email:      p.Email,
		IsVerified: p.IsVerified,
		CreatedAt:  p.CreatedAt,
	}
}

func toPost(p *postDTO) *entities.Post {
	return &entities.Post{
		ID:            p.ID,
		AuthorID:      p.AuthorID,
		Content:       p.Content,
		MediaURLs:     p.MediaURLs,
		Type:          entities.PostType(p.Type),
		SourceID:      p.SourceID.String,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		SharesCount:   p.SharesCount,
		ViewsCount:    p.ViewsCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toConversation(c *conversationDTO) *entities.Conversation {
	return &entities.Conversation{
		ID:             c.ID,
		ParticipantIDs: c.ParticipantIDs,
		LastMessageID:  c.LastMessageID.String,
		LastMessageAt:  c.LastMessageAt.Time,
		CreatedAt:      c.CreatedAt,
	}
}

func stringsUnique(s []string) []string {
	m := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))

	for _, v := range s {
		if _, ok := m[v]; !ok {
			m[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
