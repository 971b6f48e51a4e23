// Copyright 2014-2016 The Kestrel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selfplay

import "github.com/BurntSushi/toml"

// LoadConfig reads a Config from a TOML file, for example:
//
//	games = 200
//	depth = 6
//	seed = 42
//
//	[candidate]
//	late_move_reduction_factor = 1.5
//
//	[baseline]
//	late_move_reduction_factor = 1.0
func LoadConfig(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
