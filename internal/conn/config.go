package conn

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the connection settings for the default cluster.
// Environment variables are parsed from the ESADMIN_ prefix.
type Config struct {
	ClusterName string `envconfig:"CLUSTER_NAME" default:"default"`
	ClusterURI  string `envconfig:"CLUSTER_URI" default:"http://localhost:9200"`

	Username string `envconfig:"USERNAME" default:""`
	Password string `envconfig:"PASSWORD" default:""`

	// HTTPTimeout bounds each request; ConnectTimeout bounds the total
	// ping-retry window when first connecting to a cluster.
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	ConnectTimeout time.Duration `envconfig:"CONNECT_TIMEOUT" default:"15s"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("esadmin", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
