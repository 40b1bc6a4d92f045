package config

import "github.com/urfave/cli/v3"

// DefaultAddr is where the HTTP API listens by default
const DefaultAddr = "localhost:8080"

// Server holds HTTP API configuration
type Server struct {
	Addr    string
	WorkDir string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       DefaultAddr,
			Destination: &c.Addr,
			Sources:     cli.EnvVars("YT_FETCH_ADDR"),
		},
		&cli.StringFlag{
			Name:        "work-dir",
			Usage:       "Directory for per-request downloads (system temp dir when empty)",
			Destination: &c.WorkDir,
			Sources:     cli.EnvVars("YT_FETCH_WORK_DIR"),
		},
	}
}
