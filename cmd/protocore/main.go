package main

/*
* CLI for inspecting and decoding protobuf payloads, and for running the
* conformance test harness.
 */

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

func PrintFatal(msg string, args ...interface{}) {
	os.Stderr.WriteString(fmt.Sprintf(msg, args...) + "\n")
	os.Exit(1)
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "protocore"
	app.Usage = "inspect, describe and decode protobuf messages"
	app.Version = "0.1.0"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "YAML or TOML configuration file"},
		cli.StringSliceFlag{Name: "proto-dir, I", Usage: "directory .proto imports resolve against"},
		cli.StringSliceFlag{Name: "schema, s", Usage: ".proto file or directory to load"},
		cli.StringSliceFlag{Name: "descriptor-set", Usage: "FileDescriptorSet file to load"},
		cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn or error"},
	}
	app.Commands = []cli.Command{
		cli.Command{
			Name:      "inspect",
			Aliases:   []string{"i"},
			Usage:     "list the top-level fields of a payload without a schema",
			ArgsUsage: "[file]",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "hex", Usage: "input is hex text"},
			},
			Action: func(c *cli.Context) error { return inspectCommand(c, in) },
		},
		cli.Command{
			Name:      "describe",
			Aliases:   []string{"d"},
			Usage:     "list loaded types, or print one message, enum or service",
			ArgsUsage: "[name]",
			Action:    describeCommand,
		},
		cli.Command{
			Name:      "decode",
			Usage:     "decode a payload with a loaded message type",
			ArgsUsage: "[file]",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "type, t", Usage: "message type name"},
				cli.BoolFlag{Name: "hex", Usage: "input is hex text"},
			},
			Action: func(c *cli.Context) error { return decodeCommand(c, in) },
		},
		cli.Command{
			Name:  "conformance",
			Usage: "serve conformance requests on stdin and stdout",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "metrics-addr", Usage: "serve prometheus metrics on this address"},
			},
			Action: func(c *cli.Context) error { return conformanceCommand(c, in) },
		},
	}
	return app
}

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		PrintFatal(err.Error())
	}
}
