package main

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
