package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	serrors "github.com/dargueta/shrink/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newApp().RunContext(ctx, os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %s\n", err.Error())
		stop()
		os.Exit(serrors.CodeOf(err).ExitStatus())
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "shrink",
		Usage: "Compress text, documents, images, audio and video losslessly",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress one or more files",
				ArgsUsage: "FILE [FILE...]",
				Action:    compressFiles,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "directory to write compressed files to",
						Value:   ".",
						EnvVars: []string{"SHRINK_OUTPUT_DIR"},
					},
					&cli.StringFlag{
						Name:    "report",
						Usage:   "write a CSV summary of every file to `PATH`",
						EnvVars: []string{"SHRINK_REPORT"},
					},
					&cli.StringFlag{
						Name:    "preview-dir",
						Usage:   "write previews of the original and compressed data to `DIR`",
						EnvVars: []string{"SHRINK_PREVIEW_DIR"},
					},
					&cli.IntFlag{
						Name:    "workers",
						Usage:   "maximum number of video frames to encode at once (0 = one per CPU)",
						EnvVars: []string{"SHRINK_WORKERS"},
					},
					&cli.IntFlag{
						Name:    "preview-frames",
						Usage:   "number of video frames to include in previews",
						Value:   10,
						EnvVars: []string{"SHRINK_PREVIEW_FRAMES"},
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "log progress to stderr",
						EnvVars: []string{"SHRINK_VERBOSE"},
					},
				},
			},
			{
				Name:   "kinds",
				Usage:  "List the supported file extensions",
				Action: listKinds,
			},
		},
	}
}
