package cmd

import (
	"github.com/df07/go-phong-raytracer/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

// renderLogger feeds the renderer's progress lines into the leveled logger
var renderLogger = log.Printer{Logger: logger, Level: log.Info}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
