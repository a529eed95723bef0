package testlog

import (
	"testing"

	"github.com/danmuck/matmul/internal/logging"
	"github.com/rs/zerolog/log"
)

func Start(t *testing.T) {
	t.Helper()
	if err := logging.ConfigureTests(); err != nil {
		t.Fatalf("configure test logging: %v", err)
	}
	log.Info().Str("test", t.Name()).Msg("start")
}
