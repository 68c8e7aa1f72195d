package app

import (
	"io"

	"github.com/rs/zerolog"

	"cryptotour/internal/logging"
	"cryptotour/internal/tour"
)

// App is the validated configuration plus the shared logger and output.
type App struct {
	Config  Config
	Options tour.Options
	Log     zerolog.Logger
	Out     io.Writer
}

// New validates cfg and builds the logger. Results go to out, logs to logOut.
func New(cfg Config, out, logOut io.Writer) (*App, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	var log zerolog.Logger
	if cfg.LogFormat == "json" {
		log = logging.New(logOut, cfg.LogLevel)
	} else {
		log = logging.Console(logOut, cfg.LogLevel)
	}
	return &App{Config: cfg, Options: opts, Log: log, Out: out}, nil
}

// Tour returns a runner using the app's options.
func (a *App) Tour() *tour.Runner {
	return tour.New(a.Options, a.Out, a.Log)
}
