// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/thanhtphung/cppware-sub002/bom"
)

// config holds the defaults uconv falls back to when a flag is not
// given explicitly.
type config struct {
	DefaultForm  string `json:"defaultForm"`
	DefaultChar  string `json:"defaultChar"`
	GrowthFactor int    `json:"growthFactor"`
	AddBom       bool   `json:"addBom"`
}

func defaultConfig() config {
	return config{
		DefaultForm:  "utf8",
		DefaultChar:  "?",
		GrowthFactor: 0,
		AddBom:       false,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func parseForm(name string) (bom.Form, error) {
	switch name {
	case "", "utf8":
		return bom.UTF8, nil
	case "utf16", "utf16le", "utf16native":
		return bom.UTF16Native, nil
	case "utf16be", "utf16swapped":
		return bom.UTF16Swapped, nil
	case "utf32", "utf32le", "utf32native":
		return bom.UTF32Native, nil
	case "utf32be", "utf32swapped":
		return bom.UTF32Swapped, nil
	default:
		return bom.None, fmt.Errorf("unrecognized form %q", name)
	}
}
