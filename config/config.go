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

// Package config holds the TOML configuration of the ivquery tool.
package config

import (
	"os"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/biogo/intervals/internal/ivtext"
	"github.com/biogo/intervals/ivmap"
)

var log = logger.GetOrCreate("intervals/config")

// Config is the top level configuration.
type Config struct {
	Log   LogConfig
	Entry []EntryConfig
}

// LogConfig sets the logger pattern, for example "*:INFO".
type LogConfig struct {
	Level string
}

// EntryConfig is one interval and value pair. Interval is in text form, for
// example "[0,10)", with floating point ends.
type EntryConfig struct {
	Interval string
	Value    string
}

// Load reads and decodes the TOML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err := f.Close()
		if err != nil {
			log.Error("cannot close file", "path", path, "error", err)
		}
	}()

	cfg := &Config{}
	err = toml.NewDecoder(f).Decode(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	log.Debug("loaded config", "path", path, "entries", len(cfg.Entry))
	return cfg, nil
}

// Build returns a MultiMap holding every entry of c.
func (c *Config) Build() (*ivmap.MultiMap[string], error) {
	m := ivmap.NewMultiMap[string]()
	for i, e := range c.Entry {
		k, err := ivtext.ParseFloat(e.Interval)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
		m.Put(k, e.Value)
	}
	return m, nil
}
