package cmd

// Config carries the process configuration sourced from the environment.
type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	RedisAddr     string
	RedisChannel  string
	GeoServiceURL string
}
