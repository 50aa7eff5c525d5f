package middleware

import (
	"event-announcer/pkg/log"
)

type Middleware struct {
	l             log.Logger
	adminToken    string
	allowedOrigin string
}

func New(l log.Logger, adminToken, allowedOrigin string) Middleware {
	return Middleware{
		l:             l,
		adminToken:    adminToken,
		allowedOrigin: allowedOrigin,
	}
}
