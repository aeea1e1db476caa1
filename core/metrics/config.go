package metrics

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool `json:"prometheus_enabled"`
	// PrometheusAddr is the listen address of the metrics/liveness server,
	// e.g. ":10000".
	PrometheusAddr string `json:"prometheus_addr"`
	InfluxEnabled  bool   `json:"influx_enabled"`
	InfluxURL      string `json:"influx_url"`
	InfluxToken    string `json:"influx_token"`
	InfluxOrg      string `json:"influx_org"`
	InfluxBucket   string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":10000"
	}
}
