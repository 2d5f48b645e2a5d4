package config

import (
	"encoding/json"
	"os"
)

type Config struct {
	HTTPServerPort string `json:"http_server_port"`
	DebugMode      bool   `json:"debug_mode"` // print logs out to console instead of file when true

	AtomicMassesFile string `json:"atomic_masses_file"` // optional: YAML file of measured atomic mass overrides
	TableOutputDir   string `json:"table_output_dir"`   // optional: write per-element factor tables here on startup

	RecordDatabase struct {
		Address  string `json:"address"`
		User     string `json:"user"`
		Password string `json:"password"`
		Database string `json:"database"`
		Table    string `json:"table"`
	} `json:"record_database"` // optional: audit successful conversions to MS SQL Server
}

func LoadConfig(filePath string) (*Config, error) {
	conf := Config{
		HTTPServerPort: "80",
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	err = dec.Decode(&conf)
	if err != nil {
		return nil, err
	}

	return &conf, nil
}
