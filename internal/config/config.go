package config

type Config struct {
	Budget   Budget
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type Budget struct {
	File            string `env:"BUDGET_FILE" envDefault:"budget_data.json"`
	DefaultCategory string `env:"BUDGET_CATEGORY" envDefault:"Misc"`
	LatestLimit     int    `env:"LATEST_LIMIT" envDefault:"5"`
}
