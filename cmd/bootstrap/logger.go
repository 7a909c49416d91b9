package bootstrap

import (
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// LoggerModule provides a plain JSON slog logger. main.go wires the
// request-aware logger from the middleware package instead; this module is
// the fallback for auxiliary fx apps (tooling, one-off jobs).
var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewBaseLogger,
	),
)

func NewBaseLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
