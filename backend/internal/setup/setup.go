package setup

import (
	"github.com/uraita-dev/uraita/backend/internal/handler"
	"github.com/uraita-dev/uraita/backend/internal/service"
	"github.com/uraita-dev/uraita/backend/internal/storage/pg"
	"github.com/uraita-dev/uraita/shared/config"
)

// Dependencies holds all initialized backend dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
}

// SetupDependencies initializes everything the API server needs.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	thread := service.NewThread(storage, cfg.ThreadTTL(), cfg.Public.TitleMaxLen)
	post := service.NewPost(storage, cfg.Public.ContentMaxLen)

	h := handler.New(thread, post, storage)

	return &Dependencies{
		Storage: storage,
		Handler: h,
	}, nil
}
