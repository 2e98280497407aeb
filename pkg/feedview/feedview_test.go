package feedview

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhub-net/linkhub/pkg/client"
)

func post(id string, likes uint32) *client.Post {
	return &client.Post{
		ID:         id,
		Content:    "content " + id,
		Author:     client.ProfileSummary{ID: "author", Name: "Author"},
		LikesCount: likes,
		CreatedAt:  time.Now().Unix(),
	}
}

func feedPage(page uint32, totalPages uint64, posts ...*client.Post) *client.Feed {
	return &client.Feed{
		Posts: posts,
		Pagination: client.Pagination{
			Page:       page,
			Limit:      20,
			TotalPages: totalPages,
		},
	}
}

func TestResolveIdentity(t *testing.T) {
	tt := []struct {
		name     string
		profile  client.ProfileSummary
		metadata map[string]string
		email    string
		expected string
	}{
		{
			name:     "profile name wins",
			profile:  client.ProfileSummary{Name: "Jane Doe"},
			metadata: map[string]string{"full_name": "J. Doe"},
			email:    "jane@example.com",
			expected: "Jane Doe",
		},
		{
			name:     "metadata over email",
			metadata: map[string]string{"full_name": "J. Doe"},
			email:    "jane@example.com",
			expected: "J. Doe",
		},
		{
			name:     "email local part",
			email:    "jane.doe@example.com",
			expected: "jane.doe",
		},
		{
			name:     "email without local part",
			email:    "@example.com",
			expected: FallbackName,
		},
		{
			name:     "nothing",
			expected: FallbackName,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			d := ResolveIdentity(tc.profile, tc.metadata, tc.email)
			assert.Equal(t, tc.expected, d.Name)
		})
	}
}

func TestFeed_Load(t *testing.T) {
	f := New()

	f.Load(feedPage(1, 3, post("p1", 0), post("p2", 0)))
	require.Len(t, f.Posts(), 2)
	assert.EqualValues(t, 1, f.Page())
	assert.True(t, f.HasMore())

	// overlapping window does not duplicate
	f.Load(feedPage(2, 3, post("p2", 0), post("p3", 0)))
	require.Len(t, f.Posts(), 3)
	assert.Equal(t, "p3", f.Posts()[2].ID)

	f.Load(feedPage(3, 3, post("p4", 0)))
	assert.False(t, f.HasMore())

	// first page replaces everything accumulated so far
	f.Load(feedPage(1, 1, post("p9", 0)))
	require.Len(t, f.Posts(), 1)
	assert.Equal(t, "p9", f.Posts()[0].ID)
	assert.False(t, f.HasMore())
}

func TestFeed_ApplyLike(t *testing.T) {
	f := New()
	f.Load(feedPage(1, 1, post("p1", 2)))

	require.True(t, f.ApplyLike("p1"))
	assert.True(t, f.Posts()[0].Liked)
	assert.EqualValues(t, 3, f.Posts()[0].LikesCount)

	// double like is a no-op
	require.False(t, f.ApplyLike("p1"))
	assert.EqualValues(t, 3, f.Posts()[0].LikesCount)

	require.True(t, f.ApplyUnlike("p1"))
	assert.False(t, f.Posts()[0].Liked)
	assert.EqualValues(t, 2, f.Posts()[0].LikesCount)

	require.False(t, f.ApplyUnlike("p1"))

	assert.False(t, f.ApplyLike("missing"))
	assert.False(t, f.ApplyUnlike("missing"))
}

func TestFeed_ApplyUnlike_FloorsAtZero(t *testing.T) {
	f := New()

	p := post("p1", 0)
	p.UserLiked = true
	f.Load(feedPage(1, 1, p))

	require.True(t, f.ApplyUnlike("p1"))
	assert.Zero(t, f.Posts()[0].LikesCount)
}

func TestFeed_ApplyNewComment(t *testing.T) {
	f := New()
	f.Load(feedPage(1, 1, post("p1", 0)))

	ok := f.ApplyNewComment("p1", &client.Comment{
		ID:        "c1",
		PostID:    "p1",
		Content:   "nice",
		Author:    client.ProfileSummary{Name: "Peer"},
		CreatedAt: time.Now().Unix(),
	})
	require.True(t, ok)

	v := f.Posts()[0]
	assert.EqualValues(t, 1, v.CommentsCount)
	require.Len(t, v.Comments, 1)
	assert.Equal(t, "nice", v.Comments[0].Content)
	assert.Equal(t, "Peer", v.Comments[0].Author.Name)

	assert.False(t, f.ApplyNewComment("missing", &client.Comment{ID: "c2"}))
}

func TestFeed_PrependNewPost(t *testing.T) {
	f := New()
	f.Load(feedPage(1, 1, post("p1", 0)))

	f.PrependNewPost(post("p0", 0))
	require.Len(t, f.Posts(), 2)
	assert.Equal(t, "p0", f.Posts()[0].ID)

	// already known ids are ignored
	f.PrependNewPost(post("p1", 5))
	require.Len(t, f.Posts(), 2)
}

func TestFeed_Reconcile(t *testing.T) {
	f := New()
	f.Load(feedPage(1, 1, post("p1", 2), post("p2", 0)))

	// optimistic like that the server rejected
	require.True(t, f.ApplyLike("p1"))
	assert.EqualValues(t, 3, f.Posts()[0].LikesCount)

	f.Reconcile(feedPage(1, 2, post("p1", 2)))

	assert.False(t, f.Posts()[0].Liked)
	assert.EqualValues(t, 2, f.Posts()[0].LikesCount)
	// p2 was not in the page, local state stays
	assert.Equal(t, "p2", f.Posts()[1].ID)
	assert.True(t, f.HasMore())
}

func TestFeed_LoadManyPages(t *testing.T) {
	f := New()

	for page := uint32(1); page <= 5; page++ {
		f.Load(feedPage(page, 5, post(fmt.Sprintf("p%d", page), 0)))
	}

	assert.Len(t, f.Posts(), 5)
	assert.EqualValues(t, 5, f.Page())
	assert.False(t, f.HasMore())
}
