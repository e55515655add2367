package app

import "log/slog"

// Overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/landing-builder-backend/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// buildInfo renders the link-time variables as one slog group.
type buildInfo struct{}

func (buildInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime),
	)
}
