package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:        "dsaexplorer",
		Usage:       "Browse data structures and algorithms in the terminal",
		Description: "Without a subcommand the interactive explorer starts on the topic catalog.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to the config file",
				Sources: cli.EnvVars("DSAEXPLORER_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			tuiCmd(),
			searchCmd(),
			showCmd(),
			exportCmd(),
			runCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runTUI(ctx, cmd.String("config"), "/")
		},
	}
}

func tuiCmd() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Start the interactive explorer",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "route", Value: "/", Usage: "Page to open first, e.g. /topic/graphs"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runTUI(ctx, cmd.String("config"), cmd.String("route"))
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "List the topics matching a query and filters",
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Value: "All", Usage: "Category to keep"},
			&cli.StringFlag{Name: "difficulty", Aliases: []string{"d"}, Value: "All", Usage: "Difficulty to keep (Easy, Medium, Hard)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return search(cmd.Root().Writer, searchOptions{
				Query:      cmd.Args().First(),
				Category:   cmd.String("category"),
				Difficulty: cmd.String("difficulty"),
			})
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print every tab of a topic",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Usage: "Code language (python, java, cpp)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return fmt.Errorf("topic id argument is required")
			}
			lang := cmd.String("language")
			if lang == "" {
				lang = loadConfig(cmd.String("config")).UISettings.DefaultLanguage
			}
			return show(cmd.Root().Writer, id, lang)
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the catalog as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "File to write instead of stdout"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return export(cmd.Root().Writer, cmd.String("output"))
		},
	}
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run a file through the playground",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Usage: "Language of the file, guessed from the extension by default"},
			&cli.DurationFlag{Name: "delay", Value: -1, Usage: "Simulated run time, the configured delay by default"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("file argument is required")
			}
			delay := cmd.Duration("delay")
			if delay < 0 {
				delay = configDelay(loadConfig(cmd.String("config")))
			}
			return runFile(ctx, cmd.Root().Writer, path, cmd.String("language"), delay)
		},
	}
}
