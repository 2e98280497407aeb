// Package feedview maintains the in-memory feed a client renders: it maps
// server rows to display view-models and applies optimistic local mutations
// without refetching.
//
// A Feed is not safe for concurrent use. It is meant to be driven from a
// single UI loop; optimistic state can diverge from the server until
// Reconcile is called with a fresh page.
package feedview

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/linkhub-net/linkhub/pkg/client"
)

// FallbackName is shown when no identity source yields a name.
const FallbackName = "Member"

// DisplayIdentity is the resolved presentation of a profile.
type DisplayIdentity struct {
	Name      string
	Headline  string
	AvatarURL string
}

// ResolveIdentity resolves a display identity with a fixed precedence:
// profile name, then the full_name metadata field, then the email's local
// part, then FallbackName.
func ResolveIdentity(p client.ProfileSummary, metadata map[string]string, email string) DisplayIdentity {
	name := p.Name
	if name == "" {
		name = metadata["full_name"]
	}
	if name == "" && email != "" {
		name = email
		if i := strings.IndexByte(email, '@'); i >= 0 {
			name = email[:i]
		}
	}
	if name == "" {
		name = FallbackName
	}

	return DisplayIdentity{
		Name:      name,
		Headline:  p.Headline,
		AvatarURL: p.AvatarURL,
	}
}

// CommentView ...
type CommentView struct {
	ID        string
	Author    DisplayIdentity
	Content   string
	PostedAt  string
	CreatedAt time.Time
}

// PostView is one rendered feed entry.
type PostView struct {
	ID            string
	Author        DisplayIdentity
	Content       string
	MediaURLs     []string
	PostType      string
	LikesCount    uint32
	CommentsCount uint32
	SharesCount   uint32
	ViewsCount    uint64
	Liked         bool
	Comments      []*CommentView
	PostedAt      string
	CreatedAt     time.Time
}

// Feed accumulates feed pages and local mutations.
type Feed struct {
	posts []*PostView
	index map[string]*PostView

	page       uint32
	totalPages uint64
}

// New ...
func New() *Feed {
	return &Feed{
		index: make(map[string]*PostView),
	}
}

// Load folds one server page into the feed. The first page replaces local
// state, later pages append; posts already present are skipped so an
// overlapping window does not duplicate entries.
func (f *Feed) Load(page *client.Feed) {
	if page.Pagination.Page <= 1 {
		f.posts = f.posts[:0]
		f.index = make(map[string]*PostView)
	}

	for _, p := range page.Posts {
		if _, ok := f.index[p.ID]; ok {
			continue
		}

		v := newPostView(p)
		f.posts = append(f.posts, v)
		f.index[p.ID] = v
	}

	f.page = page.Pagination.Page
	f.totalPages = page.Pagination.TotalPages
}

// ApplyLike optimistically marks a post liked. It reports whether local
// state changed; the caller still owns surfacing a failed server call.
func (f *Feed) ApplyLike(postID string) bool {
	v, ok := f.index[postID]
	if !ok || v.Liked {
		return false
	}

	v.Liked = true
	v.LikesCount++

	return true
}

// ApplyUnlike optimistically removes the user's like from a post.
func (f *Feed) ApplyUnlike(postID string) bool {
	v, ok := f.index[postID]
	if !ok || !v.Liked {
		return false
	}

	v.Liked = false
	if v.LikesCount > 0 {
		v.LikesCount--
	}

	return true
}

// ApplyNewComment appends a freshly created comment to its post and bumps
// the local counter.
func (f *Feed) ApplyNewComment(postID string, c *client.Comment) bool {
	v, ok := f.index[postID]
	if !ok {
		return false
	}

	v.Comments = append(v.Comments, newCommentView(c))
	v.CommentsCount++

	return true
}

// PrependNewPost inserts a freshly created post at the head of the feed
// without a refetch.
func (f *Feed) PrependNewPost(p *client.Post) {
	if _, ok := f.index[p.ID]; ok {
		return
	}

	v := newPostView(p)
	f.posts = append([]*PostView{v}, f.posts...)
	f.index[p.ID] = v
}

// Reconcile overwrites optimistic state with server truth for every post
// present in the given page. Posts the page does not mention keep their
// local state.
func (f *Feed) Reconcile(page *client.Feed) {
	for _, p := range page.Posts {
		v, ok := f.index[p.ID]
		if !ok {
			continue
		}

		*v = *newPostView(p)
	}

	f.totalPages = page.Pagination.TotalPages
}

// Posts returns the rendered list, newest first.
func (f *Feed) Posts() []*PostView {
	return f.posts
}

// Page returns the last loaded page number.
func (f *Feed) Page() uint32 {
	return f.page
}

// HasMore reports whether the server has pages beyond the last loaded one.
func (f *Feed) HasMore() bool {
	return uint64(f.page) < f.totalPages
}

func newPostView(p *client.Post) *PostView {
	createdAt := time.Unix(p.CreatedAt, 0)

	v := PostView{
		ID:            p.ID,
		Author:        ResolveIdentity(p.Author, nil, ""),
		Content:       p.Content,
		MediaURLs:     p.MediaURLs,
		PostType:      p.PostType,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		SharesCount:   p.SharesCount,
		ViewsCount:    p.ViewsCount,
		Liked:         p.UserLiked,
		PostedAt:      humanize.Time(createdAt),
		CreatedAt:     createdAt,
	}

	for _, c := range p.RecentComments {
		c := c
		v.Comments = append(v.Comments, newCommentView(&c))
	}

	return &v
}

func newCommentView(c *client.Comment) *CommentView {
	createdAt := time.Unix(c.CreatedAt, 0)

	return &CommentView{
		ID:        c.ID,
		Author:    ResolveIdentity(c.Author, nil, ""),
		Content:   c.Content,
		PostedAt:  humanize.Time(createdAt),
		CreatedAt: createdAt,
	}
}
