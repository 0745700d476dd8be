package models

// Config is the root of the deckdrop configuration file.
type Config struct {
	Snowflake Snowflake `yaml:"snowflake"`
	Reports   Reports   `yaml:"reports"`
	Logging   Logging   `yaml:"logging"`
}

// Snowflake holds connection settings for the account data warehouse.
type Snowflake struct {
	Account   string `yaml:"account"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"` // may be blank; resolved from keyring
	Role      string `yaml:"role"`
	Warehouse string `yaml:"warehouse"`
	Database  string `yaml:"database"`
	Schema    string `yaml:"schema"`
	Timeout   string `yaml:"timeout"` // e.g. "30s"
}

// Reports holds report generation settings.
type Reports struct {
	OutputDir string `yaml:"output_dir"` // where generated .pptx files land
}

// Logging holds log output settings.
type Logging struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
