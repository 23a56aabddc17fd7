package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-secret password encryption secret
//	-log log file path
func ParseFlags() *Config {
	var databaseDSN string
	var encryptionSecret string
	var logPath string

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&encryptionSecret, "secret", "", "Password encryption secret")
	flag.StringVar(&logPath, "log", "", "Log file path")

	flag.Parse()

	return &Config{
		App: App{
			EncryptionSecret: encryptionSecret,
			LogPath:          logPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
	}
}
