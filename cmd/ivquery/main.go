// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command ivquery loads interval and value entries from a TOML file and
// reports the entries matching point and interval queries.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/exp/slices"

	"github.com/biogo/intervals/config"
	"github.com/biogo/intervals/internal/ivtext"
	"github.com/biogo/intervals/interval"
	"github.com/biogo/intervals/ivmap"
)

var log = logger.GetOrCreate("main")

func main() {
	app := newApp(os.Stdout)
	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "ivquery"
	app.Version = "v0.0.1"
	app.Usage = "Query interval entries by point or by overlapping interval"
	app.Flags = getFlags()
	app.Writer = w
	app.Action = func(c *cli.Context) error {
		return run(c, w)
	}
	return app
}

func run(ctx *cli.Context, w io.Writer) error {
	cfg, err := config.Load(ctx.String(configurationFile.Name))
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if ctx.IsSet(logLevel.Name) || level == "" {
		level = ctx.String(logLevel.Name)
	}
	err = logger.SetLogLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}

	m, err := cfg.Build()
	if err != nil {
		return err
	}
	log.Debug("built interval map", "entries", m.Len(), "nodes", m.NodeSize())

	for _, text := range ctx.StringSlice(points.Name) {
		p, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return errors.Wrapf(err, "point %q", text)
		}
		report(w, "point "+text, m.Query(interval.Float(p)))
	}
	for _, text := range ctx.StringSlice(intervals.Name) {
		q, err := ivtext.ParseFloat(text)
		if err != nil {
			return err
		}
		report(w, "interval "+q.String(), m.QueryInterval(q))
	}
	printStats(w, m)

	return nil
}

func report(w io.Writer, query string, found []string) {
	slices.Sort(found)
	fmt.Fprintf(w, "%s: %s\n", query, strings.Join(found, " "))
}

func printStats(w io.Writer, m *ivmap.MultiMap[string]) {
	fmt.Fprintf(w, "nodes: %d, entries: %d, depth: %d\n", m.NodeSize(), m.Len(), m.Depth())
}
