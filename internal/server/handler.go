package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/linkhub-net/linkhub/internal/entities"
	mm "github.com/linkhub-net/linkhub/internal/middleware"
	"github.com/linkhub-net/linkhub/internal/service"
)

func (s server) getFeed(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /feed Feed GetFeed
	//
	// Return the requester's feed with authors, like flags and recent comments.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: type
	//   description: feed shape to assemble
	//   in: query
	//   required: false
	//   default: all
	//   type: string
	//   enum: [all, connections, community]
	// - name: source_id
	//   description: community id, required when type is community
	//   in: query
	//   required: false
	// - name: page
	//   in: query
	//   required: false
	//   default: 1
	//   minimum: 1
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 50
	// responses:
	//   '200':
	//     description: Feed
	//     schema:
	//       "$ref": "#/definitions/FeedResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: requester is not a member of the community
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	params := extractFeedParamsFromQuery(r.URL.Query())
	params.RequestedBy = mm.UserID(r.Context())

	feed, err := s.s.GetFeed(r.Context(), params)
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to get feed")
		return
	}

	writeOK(w, http.StatusOK, newFeedResponse(feed))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Create a post on behalf of the requester.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     description: created post
	//     schema:
	//       "$ref": "#/definitions/CreatePostResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: requester is not a member of the community
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	post, err := s.s.CreatePost(r.Context(), &service.CreatePostParams{
		AuthorID:  mm.UserID(r.Context()),
		Content:   req.Content,
		MediaURLs: req.MediaURLs,
		Type:      entities.PostType(req.PostType),
		SourceID:  req.SourceID,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to create post")
		return
	}

	writeOK(w, http.StatusCreated, CreatePostResponse{Post: *toAPIPost(post)})
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id} Posts GetPost
	//
	// Get post by id.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/GetPostResponse"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	post, err := s.s.GetPost(r.Context(), mm.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to get post")
		return
	}

	writeOK(w, http.StatusOK, GetPostResponse{Post: *toAPIPost(post)})
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{id} Posts DeletePost
	//
	// Delete the requester's post.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '204':
	//     description: post deleted
	//   '403':
	//     description: post belongs to somebody else
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := s.s.DeletePost(r.Context(), chi.URLParam(r, "id"), mm.UserID(r.Context())); err != nil {
		writeServiceError(r.Context(), w, err, "failed to delete post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/like Posts ToggleLike
	//
	// Toggle the requester's like on a post. The response carries the
	// resulting state and the recounted total.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: like toggled
	//     schema:
	//       "$ref": "#/definitions/ToggleLikeResponse"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	res, err := s.s.ToggleLike(r.Context(), chi.URLParam(r, "id"), mm.UserID(r.Context()))
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to toggle like")
		return
	}

	writeOK(w, http.StatusOK, ToggleLikeResponse{
		Liked:      res.Liked,
		LikesCount: res.LikesCount,
	})
}

func (s server) createComment(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/comments Posts CreateComment
	//
	// Comment on a post.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreateCommentRequest"
	// responses:
	//   '201':
	//     description: created comment
	//     schema:
	//       "$ref": "#/definitions/CreateCommentResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	res, err := s.s.CreateComment(r.Context(), &service.CreateCommentParams{
		PostID:   chi.URLParam(r, "id"),
		AuthorID: mm.UserID(r.Context()),
		Content:  req.Content,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to create comment")
		return
	}

	writeOK(w, http.StatusCreated, CreateCommentResponse{
		Comment:       toAPIComment(&res.Comment),
		CommentsCount: res.CommentsCount,
	})
}

func (s server) listNotifications(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /notifications Notifications ListNotifications
	//
	// Return the requester's notifications, newest first.
	//
	// ---
	// parameters:
	// - name: unread
	//   description: returns only unread notifications
	//   in: query
	//   required: false
	//   type: boolean
	// - name: page
	//   in: query
	//   required: false
	//   default: 1
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	// responses:
	//   '200':
	//     description: Notifications
	//     schema:
	//       "$ref": "#/definitions/NotificationsResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	q := r.URL.Query()
	page, limit := extractPageFromQuery(q)

	res, err := s.s.ListNotifications(r.Context(), &service.NotificationsParams{
		RecipientID: mm.UserID(r.Context()),
		UnreadOnly:  q.Get("unread") == "true",
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to list notifications")
		return
	}

	out := NotificationsResponse{
		Notifications: make([]*Notification, len(res.Notifications)),
		UnreadCount:   res.UnreadCount,
		Pagination:    toAPIPagination(res.Pagination),
	}
	for i, n := range res.Notifications {
		out.Notifications[i] = toAPINotification(n)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) markNotificationsRead(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /notifications/read Notifications MarkNotificationsRead
	//
	// Mark the requester's notifications as read. An empty ids list marks
	// all of them.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/MarkNotificationsReadRequest"
	// responses:
	//   '204':
	//     description: notifications marked
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req MarkNotificationsReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if err := s.s.MarkNotificationsRead(r.Context(), mm.UserID(r.Context()), req.IDs...); err != nil {
		writeServiceError(r.Context(), w, err, "failed to mark notifications read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) createConnection(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /connections Connections CreateConnection
	//
	// Send a connection request to another member.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreateConnectionRequest"
	// responses:
	//   '201':
	//     description: created connection request
	//     schema:
	//       "$ref": "#/definitions/Connection"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: receiver not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: connection already exists
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreateConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	conn, err := s.s.RequestConnection(r.Context(), mm.UserID(r.Context()), req.ReceiverID)
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to request connection")
		return
	}

	writeOK(w, http.StatusCreated, toAPIConnection(conn))
}

func (s server) respondConnection(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /connections/{id} Connections RespondConnection
	//
	// Accept or decline a pending connection request. Only its receiver may
	// respond.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/RespondConnectionRequest"
	// responses:
	//   '200':
	//     description: updated connection
	//     schema:
	//       "$ref": "#/definitions/Connection"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: requester is not the receiver
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: connection not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req RespondConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	var accept bool
	switch req.Action {
	case "accept":
		accept = true
	case "decline":
	default:
		writeErrorf(w, http.StatusBadRequest, "invalid action: %s", req.Action)
		return
	}

	conn, err := s.s.RespondConnection(r.Context(), chi.URLParam(r, "id"), mm.UserID(r.Context()), accept)
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to respond to connection")
		return
	}

	writeOK(w, http.StatusOK, toAPIConnection(conn))
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /messages Messaging SendMessage
	//
	// Send a message. Either conversation_id or recipient_id must be set; a
	// missing conversation is created on first contact.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SendMessageRequest"
	// responses:
	//   '201':
	//     description: sent message
	//     schema:
	//       "$ref": "#/definitions/SendMessageResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: requester is not a conversation participant
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	res, err := s.s.SendMessage(r.Context(), &service.SendMessageParams{
		SenderID:       mm.UserID(r.Context()),
		ConversationID: req.ConversationID,
		RecipientID:    req.RecipientID,
		Content:        req.Content,
		MediaURL:       req.MediaURL,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to send message")
		return
	}

	writeOK(w, http.StatusCreated, SendMessageResponse{
		Message:        toAPIMessage(&res.Message),
		ConversationID: res.ConversationID,
	})
}

func (s server) listConversations(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /conversations Messaging ListConversations
	//
	// Return the requester's conversations ordered by last activity.
	//
	// ---
	// responses:
	//   '200':
	//     description: Conversations
	//     schema:
	//       "$ref": "#/definitions/ConversationsResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	conversations, err := s.s.ListConversations(r.Context(), mm.UserID(r.Context()))
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to list conversations")
		return
	}

	out := ConversationsResponse{
		Conversations: make([]*Conversation, len(conversations)),
	}
	for i, c := range conversations {
		out.Conversations[i] = toAPIConversation(c)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) listMessages(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /conversations/{id}/messages Messaging ListMessages
	//
	// Return a conversation's messages, newest first.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: page
	//   in: query
	//   required: false
	//   default: 1
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	// responses:
	//   '200':
	//     description: Messages
	//     schema:
	//       "$ref": "#/definitions/MessagesResponse"
	//   '403':
	//     description: requester is not a conversation participant
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: conversation not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	page, limit := extractPageFromQuery(r.URL.Query())

	res, err := s.s.ListMessages(r.Context(), &service.MessagesParams{
		UserID:         mm.UserID(r.Context()),
		ConversationID: chi.URLParam(r, "id"),
		Page:           page,
		Limit:          limit,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to list messages")
		return
	}

	out := MessagesResponse{
		Messages:   make([]*Message, len(res.Messages)),
		Pagination: toAPIPagination(res.Pagination),
	}
	for i, m := range res.Messages {
		msg := toAPIMessage(m)
		out.Messages[i] = &msg
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profiles/{id} Profiles GetProfile
	//
	// Get profile by id.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	profile, err := s.s.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to get profile")
		return
	}

	writeOK(w, http.StatusOK, toAPIProfile(profile))
}

func (s server) setProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /profiles/me Profiles SetProfile
	//
	// Create or update the requester's profile.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SetProfileRequest"
	// responses:
	//   '200':
	//     description: updated profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SetProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	profile := entities.Profile{
		ID:        mm.UserID(r.Context()),
		Name:      req.Name,
		Headline:  req.Headline,
		AvatarURL: req.AvatarURL,
		Email:     req.Email,
	}

	if err := s.s.SetProfile(r.Context(), &profile); err != nil {
		writeServiceError(r.Context(), w, err, "failed to set profile")
		return
	}

	writeOK(w, http.StatusOK, toAPIProfile(&profile))
}

func (s server) uploadFile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /files Files UploadFile
	//
	// Upload a file into a bucket. Size and content-type limits depend on
	// the bucket.
	//
	// ---
	// consumes:
	// - multipart/form-data
	// parameters:
	// - name: bucket
	//   in: formData
	//   required: true
	//   type: string
	// - name: file
	//   in: formData
	//   required: true
	//   type: file
	// responses:
	//   '201':
	//     description: stored file
	//     schema:
	//       "$ref": "#/definitions/UploadResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}
	defer file.Close()

	upload, err := s.s.UploadFile(r.Context(), &service.UploadFileParams{
		UserID:      mm.UserID(r.Context()),
		Bucket:      r.FormValue("bucket"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to upload file")
		return
	}

	writeOK(w, http.StatusCreated, UploadResponse{
		Path:      upload.Path,
		Bucket:    upload.Bucket,
		PublicURL: upload.PublicURL,
		FileName:  upload.FileName,
		FileSize:  upload.FileSize,
		FileType:  upload.FileType,
	})
}

func (s server) getStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /stats Stats GetStats
	//
	// Return platform-wide counters. The response is cached.
	//
	// ---
	// responses:
	//   '200':
	//     description: Stats
	//     schema:
	//       "$ref": "#/definitions/StatsResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	stats, err := s.s.GetPlatformStats(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err, "failed to get stats")
		return
	}

	writeOK(w, http.StatusOK, StatsResponse{
		Profiles: stats.Profiles,
		Posts:    stats.Posts,
		Likes:    stats.Likes,
		Comments: stats.Comments,
	})
}

// extractFeedParamsFromQuery parses feed query parameters. Malformed page
// and limit values fall back to defaults instead of failing the request.
func extractFeedParamsFromQuery(q url.Values) *service.FeedParams {
	page, limit := extractPageFromQuery(q)

	return &service.FeedParams{
		Type:     service.FeedType(q.Get("type")),
		SourceID: q.Get("source_id"),
		Page:     page,
		Limit:    limit,
	}
}

func extractPageFromQuery(q url.Values) (page uint32, limit uint16) {
	if v, err := strconv.ParseUint(q.Get("page"), 10, 32); err == nil {
		page = uint32(v)
	}

	// an oversized limit is clamped, not rejected
	if v, err := strconv.ParseUint(q.Get("limit"), 10, 64); err == nil {
		if v > service.MaxFeedLimit {
			v = service.MaxFeedLimit
		}
		limit = uint16(v)
	}

	return page, limit
}

// writeServiceError maps service errors to http statuses, treating
// everything unexpected as an internal error.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotCommunityMember),
		errors.Is(err, service.ErrNotParticipant),
		errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeInternalErrorf(ctx, w, "%s: %s", message, err.Error())
	}
}
