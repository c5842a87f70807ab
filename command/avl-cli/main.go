// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type metadata struct {
	config  *configuration.Configuration
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "replay and check workloads on a balanced tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE` [built-in defaults]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "replay one or more scripts on a single tree",
			ArgsUsage: "FILE...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " print the final tree",
				},
			},
			Action: runRun,
		},
		{
			Name:      "watch",
			Usage:     "replay a script on a fresh tree every time it is written",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " print the tree after each replay",
				},
			},
			Action: runWatch,
		},
		{
			Name:      "random",
			Usage:     "insert and delete random keys then validate the tree",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 1000,
					Usage: " number of keys to insert `COUNT`",
				},
				cli.IntFlag{
					Name:  "delete, d",
					Value: 500,
					Usage: " number of keys to delete `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random number `SEED`",
				},
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " print the final tree",
				},
			},
			Action: runRandom,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		config := configuration.Default()
		if file := c.GlobalString("config"); "" != file {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			var err error
			config, err = configuration.GetConfiguration(file)
			if nil != err {
				return fmt.Errorf("configuration: %q  error: %s", file, err)
			}
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return fmt.Errorf("logger setup failed with error: %s", err)
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s", version)
		log.Debugf("configuration: %+v", config)

		c.App.Metadata["config"] = &metadata{
			config:  config,
			verbose: verbose,
			log:     log,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
