package config

import (
	"encoding/json"
	"os"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/flagx"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It
// relies on timex.Duration so the timeout can be written either as a
// string like "30s" or as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DataDir        string         `json:"data_dir"`
	DownloadDir    string         `json:"download_dir"`
}

// parseJSON overlays Config with values from the JSON file named by
// the -c/-config flags. Absent flags mean no JSON is loaded. Only
// fields present in the file override earlier values.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
}
