package impl

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhub-net/linkhub/internal/entities"
	fsmock "github.com/linkhub-net/linkhub/internal/filestore/mock"
	"github.com/linkhub-net/linkhub/internal/service"
	storageinterface "github.com/linkhub-net/linkhub/internal/storage"
	storage "github.com/linkhub-net/linkhub/internal/storage/mock"
)

func TestSrv_GetFeed_All(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	timestamp := time.Unix(100, 0)

	posts := []*entities.Post{
		{ID: "p1", AuthorID: "peer-a", Content: "one", Type: entities.UserPostType, CreatedAt: timestamp},
		{ID: "p2", AuthorID: "user", Content: "two", Type: entities.UserPostType, CreatedAt: timestamp},
	}

	s.EXPECT().GetConnectedPeers(gomock.Any(), "user").Return([]string{"peer-a", "peer-b"}, nil)
	s.EXPECT().GetCommunityIDs(gomock.Any(), "user").Return(nil, nil)

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storageinterface.ListPostsParams) {
		require.Len(t, p.Branches, 1)
		assert.Equal(t, entities.UserPostType, p.Branches[0].Type)
		assert.Equal(t, []string{"peer-a", "peer-b", "user"}, p.Branches[0].AuthorIDs)
		assert.EqualValues(t, 20, p.Limit)
		assert.EqualValues(t, 0, p.Offset)
	}).Return(posts, nil)
	s.EXPECT().CountPosts(gomock.Any(), gomock.Any()).Return(uint64(45), nil)

	s.EXPECT().GetProfiles(gomock.Any(), "peer-a", "user").Return([]*entities.Profile{
		{ID: "peer-a", Name: "Peer A"},
		{ID: "user", Name: "Me"},
	}, nil)
	s.EXPECT().GetLikes(gomock.Any(), "user", "p1", "p2").Return(map[string]bool{"p1": true}, nil)
	s.EXPECT().GetRecentComments(gomock.Any(), service.RecentCommentsLimit, "p1", "p2").
		Return(map[string][]*storageinterface.Comment{}, nil)
	s.EXPECT().AddPostViews(gomock.Any(), "p1", "p2").Return(nil)

	feed, err := srv.GetFeed(context.Background(), &service.FeedParams{RequestedBy: "user"})
	require.NoError(t, err)

	require.Len(t, feed.Posts, 2)
	assert.Equal(t, "Peer A", feed.Posts[0].Author.Name)
	assert.True(t, feed.Posts[0].UserLiked)
	assert.False(t, feed.Posts[1].UserLiked)

	assert.EqualValues(t, 1, feed.Pagination.Page)
	assert.EqualValues(t, 20, feed.Pagination.Limit)
	assert.EqualValues(t, 45, feed.Pagination.Total)
	assert.EqualValues(t, 3, feed.Pagination.TotalPages)
}

func TestSrv_GetFeed_AllWithCommunities(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetConnectedPeers(gomock.Any(), "user").Return(nil, nil)
	s.EXPECT().GetCommunityIDs(gomock.Any(), "user").Return([]string{"c1", "c2"}, nil)

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storageinterface.ListPostsParams) {
		require.Len(t, p.Branches, 2)
		assert.Equal(t, entities.UserPostType, p.Branches[0].Type)
		assert.Equal(t, []string{"user"}, p.Branches[0].AuthorIDs)
		assert.Equal(t, entities.CommunityPostType, p.Branches[1].Type)
		assert.Equal(t, []string{"c1", "c2"}, p.Branches[1].SourceIDs)
	}).Return(nil, nil)
	s.EXPECT().CountPosts(gomock.Any(), gomock.Any()).Return(uint64(0), nil)

	s.EXPECT().GetProfiles(gomock.Any()).Return(nil, nil)
	s.EXPECT().GetLikes(gomock.Any(), "user").Return(nil, nil)
	s.EXPECT().GetRecentComments(gomock.Any(), service.RecentCommentsLimit).Return(nil, nil)
	s.EXPECT().AddPostViews(gomock.Any()).Return(nil)

	feed, err := srv.GetFeed(context.Background(), &service.FeedParams{
		RequestedBy: "user",
		Type:        service.AllFeedType,
	})
	require.NoError(t, err)
	assert.Empty(t, feed.Posts)
	assert.Zero(t, feed.Pagination.TotalPages)
}

func TestSrv_GetFeed_Community(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().IsCommunityMember(gomock.Any(), "c1", "user").Return(true, nil)

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storageinterface.ListPostsParams) {
		require.Len(t, p.Branches, 1)
		assert.Equal(t, entities.CommunityPostType, p.Branches[0].Type)
		assert.Equal(t, []string{"c1"}, p.Branches[0].SourceIDs)
		assert.Empty(t, p.Branches[0].AuthorIDs)
	}).Return(nil, nil)
	s.EXPECT().CountPosts(gomock.Any(), gomock.Any()).Return(uint64(0), nil)

	s.EXPECT().GetProfiles(gomock.Any()).Return(nil, nil)
	s.EXPECT().GetLikes(gomock.Any(), "user").Return(nil, nil)
	s.EXPECT().GetRecentComments(gomock.Any(), service.RecentCommentsLimit).Return(nil, nil)
	s.EXPECT().AddPostViews(gomock.Any()).Return(nil)

	_, err := srv.GetFeed(context.Background(), &service.FeedParams{
		RequestedBy: "user",
		Type:        service.CommunityFeedType,
		SourceID:    "c1",
	})
	require.NoError(t, err)
}

func TestSrv_GetFeed_CommunityNotMember(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().IsCommunityMember(gomock.Any(), "c1", "user").Return(false, nil)

	_, err := srv.GetFeed(context.Background(), &service.FeedParams{
		RequestedBy: "user",
		Type:        service.CommunityFeedType,
		SourceID:    "c1",
	})
	require.True(t, errors.Is(err, service.ErrNotCommunityMember))
}

func TestSrv_GetFeed_CommunityWithoutSource(t *testing.T) {
	ctrl := gomock.NewController(t)

	srv := New(storage.NewMockStorage(ctrl), nil, nil)

	// a missing source is an authorization failure, not a validation one
	_, err := srv.GetFeed(context.Background(), &service.FeedParams{
		RequestedBy: "user",
		Type:        service.CommunityFeedType,
	})
	require.True(t, errors.Is(err, service.ErrNotCommunityMember))
}

func TestSrv_GetFeed_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)

	srv := New(storage.NewMockStorage(ctrl), nil, nil)

	_, err := srv.GetFeed(context.Background(), &service.FeedParams{
		RequestedBy: "user",
		Type:        "trending",
	})
	require.True(t, errors.Is(err, service.ErrInvalidRequest))
}

func TestSrv_GetFeed_ViewCountFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetConnectedPeers(gomock.Any(), "user").Return(nil, nil)
	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return([]*entities.Post{
		{ID: "p1", AuthorID: "user"},
	}, nil)
	s.EXPECT().CountPosts(gomock.Any(), gomock.Any()).Return(uint64(1), nil)
	s.EXPECT().GetProfiles(gomock.Any(), "user").Return(nil, nil)
	s.EXPECT().GetLikes(gomock.Any(), "user", "p1").Return(nil, nil)
	s.EXPECT().GetRecentComments(gomock.Any(), service.RecentCommentsLimit, "p1").Return(nil, nil)
	s.EXPECT().AddPostViews(gomock.Any(), "p1").Return(context.Canceled)

	feed, err := srv.GetFeed(context.Background(), &service.FeedParams{
		RequestedBy: "user",
		Type:        service.ConnectionsFeedType,
	})
	require.NoError(t, err)
	require.Len(t, feed.Posts, 1)
}

func TestSrv_ToggleLike(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	post := &entities.Post{ID: "p1", AuthorID: "author"}

	inTx := func(_ context.Context, f func(s storageinterface.Storage) error) error {
		return f(s)
	}

	// first toggle creates the like
	s.EXPECT().GetPost(gomock.Any(), "p1").Return(post, nil)
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(inTx)
	s.EXPECT().DeleteLike(gomock.Any(), "p1", "user").Return(false, nil)
	s.EXPECT().CreateLike(gomock.Any(), "p1", "user").Return(true, nil)
	s.EXPECT().RecountPostLikes(gomock.Any(), "p1").Return(uint32(5), nil)
	s.EXPECT().GetProfile(gomock.Any(), "user").Return(&entities.Profile{ID: "user", Name: "Me"}, nil)
	s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).Do(func(_ context.Context, nn ...*entities.Notification) {
		require.Len(t, nn, 1)
		assert.Equal(t, "author", nn[0].RecipientID)
		assert.Equal(t, entities.LikeNotification, nn[0].Type)
		assert.Equal(t, "p1", nn[0].Data["post_id"])
	}).Return(nil)

	res, err := srv.ToggleLike(context.Background(), "p1", "user")
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.EqualValues(t, 5, res.LikesCount)

	// second toggle removes it, no notification
	s.EXPECT().GetPost(gomock.Any(), "p1").Return(post, nil)
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(inTx)
	s.EXPECT().DeleteLike(gomock.Any(), "p1", "user").Return(true, nil)
	s.EXPECT().RecountPostLikes(gomock.Any(), "p1").Return(uint32(4), nil)

	res, err = srv.ToggleLike(context.Background(), "p1", "user")
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.EqualValues(t, 4, res.LikesCount)
}

func TestSrv_ToggleLike_OwnPost(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetPost(gomock.Any(), "p1").Return(&entities.Post{ID: "p1", AuthorID: "user"}, nil)
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(s storageinterface.Storage) error) error {
		return f(s)
	})
	s.EXPECT().DeleteLike(gomock.Any(), "p1", "user").Return(false, nil)
	s.EXPECT().CreateLike(gomock.Any(), "p1", "user").Return(true, nil)
	s.EXPECT().RecountPostLikes(gomock.Any(), "p1").Return(uint32(1), nil)

	res, err := srv.ToggleLike(context.Background(), "p1", "user")
	require.NoError(t, err)
	assert.True(t, res.Liked)
}

func TestSrv_ToggleLike_PostNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetPost(gomock.Any(), "p1").Return(nil, storageinterface.ErrNotFound)

	_, err := srv.ToggleLike(context.Background(), "p1", "user")
	require.True(t, errors.Is(err, service.ErrNotFound))
}

func TestSrv_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *entities.Post) {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "user", p.AuthorID)
		assert.Equal(t, "hello", p.Content)
		assert.Equal(t, entities.UserPostType, p.Type)
	}).Return(nil)
	s.EXPECT().GetProfile(gomock.Any(), "user").Return(&entities.Profile{ID: "user", Name: "Me"}, nil)
	s.EXPECT().GetConnectedPeers(gomock.Any(), "user").Return([]string{"peer"}, nil)
	s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).Do(func(_ context.Context, nn ...*entities.Notification) {
		require.Len(t, nn, 1)
		assert.Equal(t, "peer", nn[0].RecipientID)
		assert.Equal(t, entities.PostNotification, nn[0].Type)
	}).Return(nil)

	post, err := srv.CreatePost(context.Background(), &service.CreatePostParams{
		AuthorID: "user",
		Content:  "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "Me", post.Author.Name)
}

func TestSrv_CreatePost_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)

	srv := New(storage.NewMockStorage(ctrl), nil, nil)

	tt := []struct {
		name string
		p    service.CreatePostParams
	}{
		{name: "empty content", p: service.CreatePostParams{AuthorID: "user", Content: "   "}},
		{name: "too long", p: service.CreatePostParams{AuthorID: "user", Content: strings.Repeat("a", maxPostContentLength+1)}},
		{name: "too many media", p: service.CreatePostParams{
			AuthorID:  "user",
			Content:   "ok",
			MediaURLs: make([]string, maxPostMediaCount+1),
		}},
		{name: "community post without source", p: service.CreatePostParams{
			AuthorID: "user",
			Content:  "ok",
			Type:     entities.CommunityPostType,
		}},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			_, err := srv.CreatePost(context.Background(), &tc.p)
			require.True(t, errors.Is(err, service.ErrInvalidRequest))
		})
	}
}

func TestSrv_CreatePost_CommunityNotMember(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().IsCommunityMember(gomock.Any(), "c1", "user").Return(false, nil)

	_, err := srv.CreatePost(context.Background(), &service.CreatePostParams{
		AuthorID: "user",
		Content:  "hello",
		Type:     entities.CommunityPostType,
		SourceID: "c1",
	})
	require.True(t, errors.Is(err, service.ErrNotCommunityMember))
}

func TestSrv_CreateComment(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetPost(gomock.Any(), "p1").Return(&entities.Post{ID: "p1", AuthorID: "author"}, nil)
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(s storageinterface.Storage) error) error {
		return f(s)
	})
	s.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Do(func(_ context.Context, c *entities.Comment) {
		assert.Equal(t, "p1", c.PostID)
		assert.Equal(t, "user", c.AuthorID)
		assert.Equal(t, "nice", c.Content)
	}).Return(nil)
	s.EXPECT().IncrementPostComments(gomock.Any(), "p1").Return(uint32(7), nil)
	s.EXPECT().GetProfile(gomock.Any(), "user").Return(&entities.Profile{ID: "user", Name: "Me"}, nil)
	s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).Return(nil)

	res, err := srv.CreateComment(context.Background(), &service.CreateCommentParams{
		PostID:   "p1",
		AuthorID: "user",
		Content:  "nice",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 7, res.CommentsCount)
	assert.Equal(t, "Me", res.Comment.Author.Name)
}

func TestSrv_CreateComment_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)

	srv := New(storage.NewMockStorage(ctrl), nil, nil)

	_, err := srv.CreateComment(context.Background(), &service.CreateCommentParams{
		PostID:   "p1",
		AuthorID: "user",
	})
	require.True(t, errors.Is(err, service.ErrInvalidRequest))
}

func TestSrv_ListNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().ListNotifications(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storageinterface.ListNotificationsParams) {
		assert.Equal(t, "user", p.RecipientID)
		assert.EqualValues(t, 20, p.Limit)
		assert.EqualValues(t, 20, p.Offset)
	}).Return([]*storageinterface.Notification{
		{Notification: entities.Notification{ID: "n1"}},
	}, nil)
	s.EXPECT().CountNotifications(gomock.Any(), "user", true).Return(uint64(3), nil)
	s.EXPECT().CountNotifications(gomock.Any(), "user", false).Return(uint64(41), nil)

	res, err := srv.ListNotifications(context.Background(), &service.NotificationsParams{
		RecipientID: "user",
		Page:        2,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.UnreadCount)
	assert.EqualValues(t, 41, res.Pagination.Total)
	assert.EqualValues(t, 3, res.Pagination.TotalPages)
}

func TestSrv_RequestConnection(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetProfile(gomock.Any(), "receiver").Return(&entities.Profile{ID: "receiver"}, nil)
	s.EXPECT().CreateConnection(gomock.Any(), gomock.Any()).Do(func(_ context.Context, c *entities.Connection) {
		assert.Equal(t, "user", c.RequesterID)
		assert.Equal(t, "receiver", c.ReceiverID)
		assert.Equal(t, entities.PendingConnection, c.Status)
	}).Return(nil)
	s.EXPECT().GetProfile(gomock.Any(), "user").Return(&entities.Profile{ID: "user", Name: "Me"}, nil)
	s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).Return(nil)

	conn, err := srv.RequestConnection(context.Background(), "user", "receiver")
	require.NoError(t, err)
	assert.Equal(t, entities.PendingConnection, conn.Status)
}

func TestSrv_RequestConnection_Self(t *testing.T) {
	ctrl := gomock.NewController(t)

	srv := New(storage.NewMockStorage(ctrl), nil, nil)

	_, err := srv.RequestConnection(context.Background(), "user", "user")
	require.True(t, errors.Is(err, service.ErrInvalidRequest))
}

func TestSrv_RequestConnection_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetProfile(gomock.Any(), "receiver").Return(&entities.Profile{ID: "receiver"}, nil)
	s.EXPECT().CreateConnection(gomock.Any(), gomock.Any()).Return(storageinterface.ErrAlreadyExists)

	_, err := srv.RequestConnection(context.Background(), "user", "receiver")
	require.True(t, errors.Is(err, service.ErrAlreadyExists))
}

func TestSrv_RespondConnection(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetConnection(gomock.Any(), "c1").Return(&entities.Connection{
		ID:          "c1",
		RequesterID: "requester",
		ReceiverID:  "user",
		Status:      entities.PendingConnection,
	}, nil)
	s.EXPECT().SetConnectionStatus(gomock.Any(), "c1", entities.AcceptedConnection).Return(nil)

	conn, err := srv.RespondConnection(context.Background(), "c1", "user", true)
	require.NoError(t, err)
	assert.Equal(t, entities.AcceptedConnection, conn.Status)
}

func TestSrv_RespondConnection_NotReceiver(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetConnection(gomock.Any(), "c1").Return(&entities.Connection{
		ID:          "c1",
		RequesterID: "requester",
		ReceiverID:  "somebody-else",
		Status:      entities.PendingConnection,
	}, nil)

	_, err := srv.RespondConnection(context.Background(), "c1", "user", true)
	require.True(t, errors.Is(err, service.ErrForbidden))
}

func TestSrv_RespondConnection_AlreadyResponded(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetConnection(gomock.Any(), "c1").Return(&entities.Connection{
		ID:         "c1",
		ReceiverID: "user",
		Status:     entities.AcceptedConnection,
	}, nil)

	_, err := srv.RespondConnection(context.Background(), "c1", "user", false)
	require.True(t, errors.Is(err, service.ErrInvalidRequest))
}

func TestSrv_SendMessage_NewConversation(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetProfile(gomock.Any(), "peer").Return(&entities.Profile{ID: "peer"}, nil)
	s.EXPECT().FindConversation(gomock.Any(), "user", "peer").Return(nil, storageinterface.ErrNotFound)

	var conversationID string
	s.EXPECT().CreateConversation(gomock.Any(), gomock.Any()).Do(func(_ context.Context, c *entities.Conversation) {
		conversationID = c.ID
		assert.ElementsMatch(t, []string{"user", "peer"}, c.ParticipantIDs)
	}).Return(nil)
	s.EXPECT().GetConversation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (*entities.Conversation, error) {
		assert.Equal(t, conversationID, id)
		return &entities.Conversation{ID: id, ParticipantIDs: []string{"user", "peer"}}, nil
	})
	s.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Do(func(_ context.Context, m *entities.Message) {
		assert.Equal(t, "user", m.SenderID)
		assert.Equal(t, "hi", m.Content)
		assert.Equal(t, entities.TextMessage, m.Type)
	}).Return(nil)
	s.EXPECT().SetConversationLastMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().GetProfile(gomock.Any(), "user").Return(&entities.Profile{ID: "user", Name: "Me"}, nil)
	s.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).Do(func(_ context.Context, nn ...*entities.Notification) {
		require.Len(t, nn, 1)
		assert.Equal(t, "peer", nn[0].RecipientID)
		assert.Equal(t, entities.MessageNotification, nn[0].Type)
	}).Return(nil)

	res, err := srv.SendMessage(context.Background(), &service.SendMessageParams{
		SenderID:    "user",
		RecipientID: "peer",
		Content:     "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, conversationID, res.ConversationID)
	assert.Equal(t, "Me", res.Message.Sender.Name)
}

func TestSrv_SendMessage_NotParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetConversation(gomock.Any(), "conv").Return(&entities.Conversation{
		ID:             "conv",
		ParticipantIDs: []string{"a", "b"},
	}, nil)

	_, err := srv.SendMessage(context.Background(), &service.SendMessageParams{
		SenderID:       "user",
		ConversationID: "conv",
		Content:        "hi",
	})
	require.True(t, errors.Is(err, service.ErrNotParticipant))
}

func TestSrv_SendMessage_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)

	srv := New(storage.NewMockStorage(ctrl), nil, nil)

	_, err := srv.SendMessage(context.Background(), &service.SendMessageParams{SenderID: "user", Content: "hi"})
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	_, err = srv.SendMessage(context.Background(), &service.SendMessageParams{SenderID: "user", RecipientID: "peer"})
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	_, err = srv.SendMessage(context.Background(), &service.SendMessageParams{SenderID: "user", RecipientID: "user", Content: "hi"})
	require.True(t, errors.Is(err, service.ErrInvalidRequest))
}

func TestSrv_ListMessages(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, nil, nil)

	s.EXPECT().GetConversation(gomock.Any(), "conv").Return(&entities.Conversation{
		ID:             "conv",
		ParticipantIDs: []string{"user", "peer"},
	}, nil)
	s.EXPECT().ListMessages(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storageinterface.ListMessagesParams) {
		assert.Equal(t, "conv", p.ConversationID)
		assert.EqualValues(t, 20, p.Limit)
	}).Return(nil, nil)
	s.EXPECT().CountMessages(gomock.Any(), "conv").Return(uint64(0), nil)

	_, err := srv.ListMessages(context.Background(), &service.MessagesParams{
		UserID:         "user",
		ConversationID: "conv",
	})
	require.NoError(t, err)
}

func TestSrv_UploadFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	fs := fsmock.NewMockStorage(ctrl)
	srv := New(storage.NewMockStorage(ctrl), fs, nil)

	var path string
	fs.EXPECT().Save(gomock.Any(), "avatars", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, p string, r io.Reader) error {
			path = p
			assert.True(t, strings.HasPrefix(p, "user/"))
			assert.True(t, strings.HasSuffix(p, ".png"))

			b, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "png bytes", string(b))

			return nil
		})
	fs.EXPECT().PublicURL("avatars", gomock.Any()).DoAndReturn(func(_, p string) string {
		assert.Equal(t, path, p)
		return "http://files.example.com/avatars/" + p
	})

	upload, err := srv.UploadFile(context.Background(), &service.UploadFileParams{
		UserID:      "user",
		Bucket:      "avatars",
		FileName:    "photo.png",
		ContentType: "image/png",
		Size:        int64(len("png bytes")),
		Body:        strings.NewReader("png bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, path, upload.Path)
	assert.Equal(t, "avatars", upload.Bucket)
	assert.Equal(t, "http://files.example.com/avatars/"+path, upload.PublicURL)
	assert.Equal(t, "photo.png", upload.FileName)
	assert.Equal(t, "image/png", upload.FileType)
}

func TestSrv_UploadFile_PrivateBucket(t *testing.T) {
	ctrl := gomock.NewController(t)

	fs := fsmock.NewMockStorage(ctrl)
	srv := New(storage.NewMockStorage(ctrl), fs, nil)

	fs.EXPECT().Save(gomock.Any(), "resumes", gomock.Any(), gomock.Any()).Return(nil)

	upload, err := srv.UploadFile(context.Background(), &service.UploadFileParams{
		UserID:      "user",
		Bucket:      "resumes",
		FileName:    "cv.pdf",
		ContentType: "application/pdf",
		Size:        100,
		Body:        strings.NewReader(strings.Repeat("a", 100)),
	})
	require.NoError(t, err)

	// private buckets never expose a public url
	assert.Empty(t, upload.PublicURL)
}

func TestSrv_UploadFile_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)

	srv := New(storage.NewMockStorage(ctrl), fsmock.NewMockStorage(ctrl), nil)

	_, err := srv.UploadFile(context.Background(), &service.UploadFileParams{
		UserID:      "user",
		Bucket:      "avatars",
		FileName:    "huge.png",
		ContentType: "image/png",
		Size:        50 << 20,
		Body:        strings.NewReader(""),
	})
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	_, err = srv.UploadFile(context.Background(), &service.UploadFileParams{
		UserID:      "user",
		Bucket:      "nope",
		FileName:    "a.png",
		ContentType: "image/png",
		Size:        1,
		Body:        strings.NewReader("a"),
	})
	require.True(t, errors.Is(err, service.ErrInvalidRequest))
}

func Test_clampPage(t *testing.T) {
	page, limit := clampPage(0, 0)
	assert.EqualValues(t, 1, page)
	assert.EqualValues(t, service.DefaultFeedLimit, limit)

	page, limit = clampPage(3, 200)
	assert.EqualValues(t, 3, page)
	assert.EqualValues(t, service.MaxFeedLimit, limit)
}

func Test_paginate(t *testing.T) {
	p := paginate(2, 20, 41)
	assert.EqualValues(t, 3, p.TotalPages)

	p = paginate(1, 20, 40)
	assert.EqualValues(t, 2, p.TotalPages)

	p = paginate(1, 20, 0)
	assert.Zero(t, p.TotalPages)
}
