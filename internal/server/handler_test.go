package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhub-net/linkhub/internal/entities"
	mm "github.com/linkhub-net/linkhub/internal/middleware"
	"github.com/linkhub-net/linkhub/internal/service"
	"github.com/linkhub-net/linkhub/internal/service/mock"
	"github.com/linkhub-net/linkhub/internal/storage"
)

func newTestRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	r, err := http.NewRequest(method, target, body)
	require.NoError(t, err)

	return r.WithContext(mm.WithUserID(r.Context(), "user"))
}

func Test_getFeed(t *testing.T) {
	timestamp := time.Unix(100, 0)

	r := newTestRequest(t, http.MethodGet, "/v1/feed?type=connections&page=2&limit=10", nil)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().GetFeed(gomock.Any(), &service.FeedParams{
		RequestedBy: "user",
		Type:        service.ConnectionsFeedType,
		Page:        2,
		Limit:       10,
	}).Return(&service.Feed{
		Posts: []*service.PostView{
			{
				Post: entities.Post{
					ID:            "post-1",
					AuthorID:      "peer",
					Content:       "hello",
					Type:          entities.UserPostType,
					LikesCount:    3,
					CommentsCount: 1,
					ViewsCount:    7,
					CreatedAt:     timestamp,
					UpdatedAt:     timestamp,
				},
				Author: entities.Profile{
					ID:   "peer",
					Name: "Peer",
				},
				UserLiked: true,
				RecentComments: []*storage.Comment{
					{
						Comment: entities.Comment{
							ID:        "comment-1",
							PostID:    "post-1",
							AuthorID:  "peer",
							Content:   "nice",
							CreatedAt: timestamp,
						},
						Author: entities.Profile{
							ID:   "peer",
							Name: "Peer",
						},
					},
				},
			},
		},
		Pagination: service.Pagination{
			Page:       2,
			Limit:      10,
			Total:      25,
			TotalPages: 3,
		},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/feed", srv.getFeed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "posts":[
      {
         "id":"post-1",
         "content":"hello",
         "media_urls":[],
         "post_type":"user",
         "author":{
            "id":"peer",
            "name":"Peer",
            "is_verified":false
         },
         "likes_count":3,
         "comments_count":1,
         "shares_count":0,
         "views_count":7,
         "user_liked":true,
         "recent_comments":[
            {
               "id":"comment-1",
               "post_id":"post-1",
               "content":"nice",
               "author":{
                  "id":"peer",
                  "name":"Peer",
                  "is_verified":false
               },
               "created_at":100
            }
         ],
         "created_at":100,
         "updated_at":100
      }
   ],
   "pagination":{
      "page":2,
      "limit":10,
      "total":25,
      "total_pages":3
   }
}
	`, w.Body.String())
}

func Test_getFeed_oversizedLimitIsClamped(t *testing.T) {
	r := newTestRequest(t, http.MethodGet, "/v1/feed?limit=100000", nil)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().GetFeed(gomock.Any(), &service.FeedParams{
		RequestedBy: "user",
		Limit:       service.MaxFeedLimit,
	}).Return(&service.Feed{}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/feed", srv.getFeed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_getFeed_notCommunityMember(t *testing.T) {
	r := newTestRequest(t, http.MethodGet, "/v1/feed?type=community&source_id=c1", nil)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().GetFeed(gomock.Any(), gomock.Any()).Return(nil, service.ErrNotCommunityMember)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/feed", srv.getFeed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"not a member of this community"}`, w.Body.String())
}

func Test_createPost(t *testing.T) {
	timestamp := time.Unix(200, 0)

	body := `{"content":"hello","post_type":"community","source_id":"c1"}`
	r := newTestRequest(t, http.MethodPost, "/v1/posts", strings.NewReader(body))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().CreatePost(gomock.Any(), &service.CreatePostParams{
		AuthorID: "user",
		Content:  "hello",
		Type:     entities.CommunityPostType,
		SourceID: "c1",
	}).Return(&service.PostView{
		Post: entities.Post{
			ID:        "post-1",
			AuthorID:  "user",
			Content:   "hello",
			Type:      entities.CommunityPostType,
			SourceID:  "c1",
			CreatedAt: timestamp,
			UpdatedAt: timestamp,
		},
		Author: entities.Profile{
			ID:   "user",
			Name: "User",
		},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Post("/v1/posts", srv.createPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
   "post":{
      "id":"post-1",
      "content":"hello",
      "media_urls":[],
      "post_type":"community",
      "source_id":"c1",
      "author":{
         "id":"user",
         "name":"User",
         "is_verified":false
      },
      "likes_count":0,
      "comments_count":0,
      "shares_count":0,
      "views_count":0,
      "user_liked":false,
      "recent_comments":[],
      "created_at":200,
      "updated_at":200
   }
}
	`, w.Body.String())
}

func Test_createPost_invalidJSON(t *testing.T) {
	r := newTestRequest(t, http.MethodPost, "/v1/posts", strings.NewReader("{"))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Post("/v1/posts", srv.createPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"failed to decode json"}`, w.Body.String())
}

func Test_toggleLike(t *testing.T) {
	r := newTestRequest(t, http.MethodPost, "/v1/posts/post-1/like", nil)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().ToggleLike(gomock.Any(), "post-1", "user").Return(&service.LikeResult{
		Liked:      true,
		LikesCount: 5,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Post("/v1/posts/{id}/like", srv.toggleLike)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":true,"likes_count":5}`, w.Body.String())
}

func Test_toggleLike_postNotFound(t *testing.T) {
	r := newTestRequest(t, http.MethodPost, "/v1/posts/missing/like", nil)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().ToggleLike(gomock.Any(), "missing", "user").Return(nil, service.ErrNotFound)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Post("/v1/posts/{id}/like", srv.toggleLike)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func Test_createComment(t *testing.T) {
	timestamp := time.Unix(300, 0)

	r := newTestRequest(t, http.MethodPost, "/v1/posts/post-1/comments", strings.NewReader(`{"content":"nice"}`))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().CreateComment(gomock.Any(), &service.CreateCommentParams{
		PostID:   "post-1",
		AuthorID: "user",
		Content:  "nice",
	}).Return(&service.CommentResult{
		Comment: storage.Comment{
			Comment: entities.Comment{
				ID:        "comment-1",
				PostID:    "post-1",
				AuthorID:  "user",
				Content:   "nice",
				CreatedAt: timestamp,
			},
			Author: entities.Profile{
				ID:   "user",
				Name: "User",
			},
		},
		CommentsCount: 4,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Post("/v1/posts/{id}/comments", srv.createComment)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
   "comment":{
      "id":"comment-1",
      "post_id":"post-1",
      "content":"nice",
      "author":{
         "id":"user",
         "name":"User",
         "is_verified":false
      },
      "created_at":300
   },
   "comments_count":4
}
	`, w.Body.String())
}

func Test_markNotificationsRead(t *testing.T) {
	r := newTestRequest(t, http.MethodPost, "/v1/notifications/read", strings.NewReader(`{"ids":["n1","n2"]}`))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().MarkNotificationsRead(gomock.Any(), "user", "n1", "n2").Return(nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Post("/v1/notifications/read", srv.markNotificationsRead)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_respondConnection(t *testing.T) {
	timestamp := time.Unix(400, 0)

	r := newTestRequest(t, http.MethodPut, "/v1/connections/conn-1", strings.NewReader(`{"action":"accept"}`))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().RespondConnection(gomock.Any(), "conn-1", "user", true).Return(&entities.Connection{
		ID:          "conn-1",
		RequesterID: "peer",
		ReceiverID:  "user",
		Status:      entities.AcceptedConnection,
		CreatedAt:   timestamp,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Put("/v1/connections/{id}", srv.respondConnection)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "id":"conn-1",
   "requester_id":"peer",
   "receiver_id":"user",
   "status":"accepted",
   "created_at":400
}
	`, w.Body.String())
}

func Test_respondConnection_invalidAction(t *testing.T) {
	r := newTestRequest(t, http.MethodPut, "/v1/connections/conn-1", strings.NewReader(`{"action":"block"}`))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Put("/v1/connections/{id}", srv.respondConnection)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid action: block"}`, w.Body.String())
}

func Test_sendMessage(t *testing.T) {
	timestamp := time.Unix(500, 0)

	r := newTestRequest(t, http.MethodPost, "/v1/messages", strings.NewReader(`{"recipient_id":"peer","content":"hi"}`))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().SendMessage(gomock.Any(), &service.SendMessageParams{
		SenderID:    "user",
		RecipientID: "peer",
		Content:     "hi",
	}).Return(&service.MessageResult{
		Message: storage.Message{
			Message: entities.Message{
				ID:             "msg-1",
				ConversationID: "conv-1",
				SenderID:       "user",
				Content:        "hi",
				Type:           entities.TextMessage,
				CreatedAt:      timestamp,
			},
			Sender: entities.Profile{
				ID:   "user",
				Name: "User",
			},
		},
		ConversationID: "conv-1",
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Post("/v1/messages", srv.sendMessage)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
   "message":{
      "id":"msg-1",
      "conversation_id":"conv-1",
      "content":"hi",
      "message_type":"text",
      "sender":{
         "id":"user",
         "name":"User",
         "is_verified":false
      },
      "created_at":500
   },
   "conversation_id":"conv-1"
}
	`, w.Body.String())
}

func Test_getProfile_notFound(t *testing.T) {
	r := newTestRequest(t, http.MethodGet, "/v1/profiles/missing", nil)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().GetProfile(gomock.Any(), "missing").Return(nil, service.ErrNotFound)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/profiles/{id}", srv.getProfile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func Test_uploadFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("bucket", "post-media"))

	fw, err := mw.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := newTestRequest(t, http.MethodPost, "/v1/files", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().UploadFile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *service.UploadFileParams) (*service.Upload, error) {
			assert.Equal(t, "user", p.UserID)
			assert.Equal(t, "post-media", p.Bucket)
			assert.Equal(t, "photo.png", p.FileName)
			assert.EqualValues(t, len("png bytes"), p.Size)

			b, err := io.ReadAll(p.Body)
			require.NoError(t, err)
			assert.Equal(t, "png bytes", string(b))

			return &service.Upload{
				Path:      fmt.Sprintf("post-media/user/%s", "photo.png"),
				Bucket:    "post-media",
				PublicURL: "http://files.example.com/post-media/user/photo.png",
				FileName:  "photo.png",
				FileSize:  int64(len("png bytes")),
				FileType:  "image/png",
			}, nil
		})

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Post("/v1/files", srv.uploadFile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
   "path":"post-media/user/photo.png",
   "bucket":"post-media",
   "public_url":"http://files.example.com/post-media/user/photo.png",
   "file_name":"photo.png",
   "file_size":9,
   "file_type":"image/png"
}
	`, w.Body.String())
}

func Test_getStats(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/stats", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock.NewMockService(ctrl)

	svc.EXPECT().GetPlatformStats(gomock.Any()).Return(&storage.PlatformStats{
		Profiles: 10,
		Posts:    20,
		Likes:    30,
		Comments: 40,
	}, nil)

	router := chi.NewRouter()
	srv := server{s: svc}
	router.Get("/v1/stats", srv.getStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"profiles":10,"posts":20,"likes":30,"comments":40}`, w.Body.String())
}
