package cmd

import (
	"github.com/mtandon-io/lumentrace/log"
	"github.com/urfave/cli"
)

var logger = log.New("cmd")

func setupLogging(ctx *cli.Context) {
	log.SetVerbosity(ctx.GlobalBool("v"), ctx.GlobalBool("vv"))
}
