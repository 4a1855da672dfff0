package main

import (
	"fmt"
	"os"

	"github.com/mtandon-io/lumentrace/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lumentrace"
	app.Usage = "render scenes using CPU path tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render a named scene to a PPM file",
			ArgsUsage: "scene-name",
			Flags:     cmd.RenderOutputFlags,
			Action:    cmd.Render,
		},
		{
			Name:   "scenes",
			Usage:  "list registered demo scenes",
			Action: cmd.Scenes,
		},
		{
			Name:      "bench",
			Usage:     "render a named scene at a small fixed resolution and report timing",
			ArgsUsage: "scene-name",
			Flags:     cmd.RenderFlags,
			Action:    cmd.Bench,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
