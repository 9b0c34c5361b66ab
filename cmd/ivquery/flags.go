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

package main

import "github.com/urfave/cli"

var (
	// configurationFile defines a flag for the path to the TOML file holding
	// the interval entries.
	configurationFile = cli.StringFlag{
		Name:  "config",
		Usage: "The `[path]` for the TOML file listing interval and value entries.",
		Value: "./config.toml",
	}
	// points defines a repeatable flag for stabbing queries.
	points = cli.StringSliceFlag{
		Name:  "point",
		Usage: "A `value` to find all entries containing it. May be repeated.",
	}
	// intervals defines a repeatable flag for overlap queries.
	intervals = cli.StringSliceFlag{
		Name:  "interval",
		Usage: "An `interval` such as \"[0,10)\" to find all entries overlapping it. May be repeated.",
	}
	// logLevel defines the logger level pattern. It overrides the Log.Level
	// setting of the configuration file.
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value.",
		Value: defaultLogLevel,
	}
)

const defaultLogLevel = "*:INFO"

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		points,
		intervals,
		logLevel,
	}
}
