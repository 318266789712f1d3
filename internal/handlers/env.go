package handlers

import (
	"github.com/lojf/ecaplanner/internal/logger"
	"github.com/lojf/ecaplanner/internal/services"
)

// Env carries what the handlers need.
type Env struct {
	Svc           *services.Services
	Log           *logger.Logger
	PublicBaseURL string
}
