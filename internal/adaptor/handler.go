package adaptor

import (
	"movie-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie *MovieHandler
	Page  *PageHandler
}

func NewHandler(service *usecase.Service, appName string, log *zap.Logger) *Handler {
	return &Handler{
		Movie: NewMovieHandler(service.Catalog, log),
		Page:  NewPageHandler(service.Catalog, appName, log),
	}
}
