package config

// this holds the resolved configuration values from CLI
var (
	Addr     string  // listen address for the HTTP API
	SaveDB   string  // path to the sqlite save database
	Level    int     // level to start on
	TickHz   float64 // simulation tick rate
	LogLevel string  // sets the log level (zap log level values)
)
