package config

import (
	"encoding/json"
	"os"

	"github.com/XVDel0Saint/fameconnect/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// non-empty values are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr   string `json:"endpoint_addr"`
	DatabaseDSN    string `json:"database_dsn"`
	StorageBackend string `json:"storage_backend"`
	StorageDir     string `json:"storage_dir"`
	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	CORSOrigin     string `json:"cors_origin"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The lookup order for the JSON file path is the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay := func(v string, dst *string) {
		if v != "" {
			*dst = v
		}
	}

	overlay(c.EndpointAddr, &config.EndpointAddr)
	overlay(c.DatabaseDSN, &config.DatabaseDSN)
	overlay(c.StorageBackend, &config.StorageBackend)
	overlay(c.StorageDir, &config.StorageDir)
	overlay(c.S3RootUser, &config.S3RootUser)
	overlay(c.S3RootPassword, &config.S3RootPassword)
	overlay(c.S3Bucket, &config.S3Bucket)
	overlay(c.S3Region, &config.S3Region)
	overlay(c.S3BaseEndpoint, &config.S3BaseEndpoint)
	overlay(c.CORSOrigin, &config.CORSOrigin)
}
