package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestConfigYAMLKeys(t *testing.T) {
	raw := `
snowflake:
  account: xy12345.us-east-1
  username: report_user
  role: REPORTING_ROLE
  warehouse: REPORTING_WH
  database: SALES_DB
  schema: PUBLIC
  timeout: 45s
reports:
  output_dir: /tmp/reports
logging:
  level: debug
`

	var config Config
	err := yaml.Unmarshal([]byte(raw), &config)
	assert.NoError(t, err)

	assert.Equal(t, "xy12345.us-east-1", config.Snowflake.Account)
	assert.Equal(t, "report_user", config.Snowflake.Username)
	assert.Empty(t, config.Snowflake.Password)
	assert.Equal(t, "REPORTING_ROLE", config.Snowflake.Role)
	assert.Equal(t, "REPORTING_WH", config.Snowflake.Warehouse)
	assert.Equal(t, "SALES_DB", config.Snowflake.Database)
	assert.Equal(t, "45s", config.Snowflake.Timeout)
	assert.Equal(t, "/tmp/reports", config.Reports.OutputDir)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestConfigRoundTrip(t *testing.T) {
	config := Config{
		Snowflake: Snowflake{
			Account:   "ab98765.eu-west-1",
			Username:  "deck_user",
			Role:      "ANALYST",
			Warehouse: "REPORTING_WH",
			Database:  "SALES_DB",
			Schema:    "CRM",
			Timeout:   "30s",
		},
		Reports: Reports{OutputDir: "reports"},
		Logging: Logging{Level: "info"},
	}

	data, err := yaml.Marshal(&config)
	assert.NoError(t, err)

	var decoded Config
	err = yaml.Unmarshal(data, &decoded)
	assert.NoError(t, err)
	assert.Equal(t, config, decoded)
}
