package main

import (
	"context"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/senti270/work-schedule-web/internal/config"
	"github.com/senti270/work-schedule-web/internal/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})
	logrus.SetOutput(os.Stdout)
}

func main() {
	var cmd = &cobra.Command{Use: "spaserve"}
	var configPath, listen, root string

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config.yaml or config.toml file")
	run := &cobra.Command{
		Use:   "run",
		Short: "Runs a server",
		Long:  `Serves a built single-page application, answering unknown paths with its index.html`,
		Run: func(c *cobra.Command, args []string) {
			// Handle interrupt signals
			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

			config := mustReadConfig(configPath)
			if c.Flags().Changed("listen") {
				config.Http.Listen = listen
			}
			docRoot := mustDocumentRoot(config, c.Flags().Changed("root"), root)
			s := server.New(config, docRoot)

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				<-interrupt
				cancel()
			}()
			if err := s.Run(ctx); err != nil {
				logrus.Fatal(err)
			}
		},
	}
	run.Flags().StringVar(&listen, "listen", "", "address to listen on, overrides http.listen")
	run.Flags().StringVar(&root, "root", "", "document root, relative to the working directory")
	cmd.AddCommand(run)

	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func mustReadConfig(path string) *config.Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("Failed to load .env, err=%v", err)
	}

	c := config.NewConfig()
	if path != "" {
		var err error
		if c, err = config.ReadFile(path); err != nil {
			logrus.Fatalln(err)
		}
	}
	c.ApplyEnv(os.Getenv)

	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		logrus.Fatalf("Invalid log level %q", c.Log.Level)
	}
	logrus.SetLevel(level)
	return c
}

// mustDocumentRoot resolves the document root. A --root flag is taken
// relative to the working directory, a configured root relative to the
// executable.
func mustDocumentRoot(c *config.Config, fromFlag bool, flagRoot string) string {
	if fromFlag {
		abs, err := filepath.Abs(flagRoot)
		if err != nil {
			logrus.Fatalln(err)
		}
		return abs
	}

	exe, err := os.Executable()
	if err != nil {
		logrus.Fatalln(err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return c.Static.AbsRoot(filepath.Dir(exe))
}
