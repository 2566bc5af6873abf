package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "fraction"
	app.Usage = "Exact fraction arithmetic without floating point rounding."
	app.Version = config.BuildVersion
	app.Metadata = make(map[string]interface{})
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   logger.INFO,
			Usage:   "the log level",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
	}
	app.Before = setupCmd
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:    "show",
			Aliases: []string{"s"},
			Usage:   "Show the forms and properties of a fraction",
			Action:  showCmd,
			Flags: append(fractionFlags("num", "den", "the"),
				&cli.IntFlag{
					Name:  "precision",
					Usage: "the decimal places, and the default value is read from the config",
				},
				&cli.BoolFlag{
					Name:  "float",
					Usage: "print the floating point approximation",
				},
				&cli.BoolFlag{
					Name:  "mixed",
					Usage: "print the mixed number form",
				},
			),
		},
		{
			Name:   string(common.OperatorPow),
			Usage:  common.OperatorPow.Usage(),
			Action: powCmd,
			Flags: append(fractionFlags("num", "den", "the"),
				&cli.IntFlag{
					Name:     "exp",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "the integer exponent",
				},
			),
		},
	}
	for _, op := range common.BinaryOperators() {
		app.Commands = append(app.Commands, &cli.Command{
			Name:   string(op),
			Usage:  op.Usage(),
			Action: binaryCmd(op),
			Flags: append(fractionFlags("num", "den", "the"),
				fractionFlags("other-num", "other-den", "the other")...),
		})
	}
	return app
}

func fractionFlags(num, den, which string) []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:     num,
			Required: true,
			Usage:    which + " numerator",
		},
		&cli.Int64Flag{
			Name:  den,
			Value: 1,
			Usage: which + " denominator",
		},
	}
}
