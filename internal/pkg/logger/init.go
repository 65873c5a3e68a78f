package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer

func InitLogger() {
	LogWriter = os.Stdout

	h := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})
	log.SetDefault(log.New(&ContextHandler{h}))
}
