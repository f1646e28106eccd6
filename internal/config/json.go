package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/labbench/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	DataDir string `json:"data_dir"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is taken from the -c or -config flags via
// flagx.JsonConfigFlags(); if neither is set, no JSON is loaded. Read or
// unmarshal errors panic (caller should recover if desired). Empty fields in
// the file leave the current Config value untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
}
