// Command statshypo describes samples and runs hypothesis tests on CSV data.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// newApp builds the statshypo application.
func newApp() *cli.App {
	return &cli.App{
		Name:     "statshypo",
		HelpName: "statshypo",
		Usage:    "descriptive statistics, density estimation, bootstrap and hypothesis tests for CSV samples",
		Flags: []cli.Flag{
			&configFlag,
			&logLevelFlag,
		},
		Commands: []*cli.Command{
			&describeCommand,
			&densityCommand,
			&acfCommand,
			&bootstrapCommand,
			&testCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
