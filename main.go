package main

import (
	"log"
	"os"

	"github.com/VaqueroSH/bookbot/internal/analyze"
	"github.com/VaqueroSH/bookbot/internal/history"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "bookbot",
		Usage:     "report descriptive statistics for a text file",
		ArgsUsage: "<path-to-book>",
		Flags:     analyzeFlags(),
		Action:    analyze.AnalyzeAction,
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Analyze a book and print its statistics report",
				ArgsUsage: "<path-to-book>",
				Flags:     analyzeFlags(),
				Action:    analyze.AnalyzeAction,
			},
			{
				Name:  "history",
				Usage: "Inspect past analyses",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List recent analyses",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "maximum number of analyses to show",
							},
						},
						Action: history.ListAction,
					},
					{
						Name:      "show",
						Usage:     "Show one analysis in detail (latest when no ID is given)",
						ArgsUsage: "[analysis-id]",
						Action:    history.ShowAction,
					},
					{
						Name:   "clear",
						Usage:  "Delete all stored analyses",
						Action: history.ClearAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func analyzeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "top",
			Value: 5,
			Usage: "number of top words to report",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "banner",
			Usage: "output format: banner, simple, table, or json",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to a YAML config file",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log errors",
		},
		&cli.BoolFlag{
			Name:  "no-history",
			Usage: "skip recording the analysis in the history database",
		},
		&cli.BoolFlag{
			Name:  "no-language",
			Usage: "skip language detection",
		},
	}
}
