// Package server LinkHub
//
// The LinkHub API serves the professional network: feed assembly, posts,
// likes, comments, notifications, connections, messaging and file uploads.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chim "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/linkhub-net/linkhub/internal/middleware"
	"github.com/linkhub-net/linkhub/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 1024 * 1024

const statsCacheTTL = 10 * time.Minute

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router. ws serves realtime
// subscriptions and is mounted behind the same auth as the rest of /v1.
func SetupRouter(s service.Service, ws http.Handler, r chi.Router, timeout time.Duration, jwtSecret []byte) {
	r.Use(
		mm.Logger,
		chim.StripSlashes,
		cors.AllowAll().Handler,
		chim.RequestID,
		chim.Recoverer,
		chim.Timeout(timeout),
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.With(mm.BodyLimiter(maxBodySize)).
			Get("/stats", mm.Cached(statsCacheTTL, srv.getStats))

		r.Group(func(r chi.Router) {
			r.Use(mm.Auth(jwtSecret))

			// uploads carry their own body cap per bucket, everything else
			// is limited here.
			r.Post("/files", srv.uploadFile)
			if ws != nil {
				r.Method(http.MethodGet, "/ws", ws)
			}

			r.Group(func(r chi.Router) {
				r.Use(mm.BodyLimiter(maxBodySize))

				r.Get("/feed", srv.getFeed)

				r.Post("/posts", srv.createPost)
				r.Get("/posts/{id}", srv.getPost)
				r.Delete("/posts/{id}", srv.deletePost)
				r.Post("/posts/{id}/like", srv.toggleLike)
				r.Post("/posts/{id}/comments", srv.createComment)

				r.Get("/notifications", srv.listNotifications)
				r.Post("/notifications/read", srv.markNotificationsRead)

				r.Post("/connections", srv.createConnection)
				r.Put("/connections/{id}", srv.respondConnection)

				r.Post("/messages", srv.sendMessage)
				r.Get("/conversations", srv.listConversations)
				r.Get("/conversations/{id}/messages", srv.listMessages)

				r.Get("/profiles/{id}", srv.getProfile)
				r.Put("/profiles/me", srv.setProfile)
			})
		})
	})
}
