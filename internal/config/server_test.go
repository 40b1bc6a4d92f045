package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/ytget/yt-fetch/internal/config"
)

func runServerFlags(t *testing.T, args ...string) config.Server {
	t.Helper()

	var cfg config.Server
	cmd := &cli.Command{
		Name:   "test",
		Flags:  cfg.Flags(),
		Action: func(context.Context, *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return cfg
}

func TestServer_Defaults(t *testing.T) {
	cfg := runServerFlags(t)
	gt.Equal(t, cfg.Addr, config.DefaultAddr)
	gt.Equal(t, cfg.WorkDir, "")
}

func TestServer_FlagsAndEnv(t *testing.T) {
	t.Setenv("YT_FETCH_WORK_DIR", "/srv/fetch")

	cfg := runServerFlags(t, "--addr", ":9090")
	gt.Equal(t, cfg.Addr, ":9090")
	gt.Equal(t, cfg.WorkDir, "/srv/fetch")
}
