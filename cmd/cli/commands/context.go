package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/internal/config"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg     *config.Config
	Store   db.Store
	Catalog *rules.Catalog
	Logger  *zap.Logger
	Ctx     context.Context
}
