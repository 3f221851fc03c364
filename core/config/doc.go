// Package config provides configuration management for the bucket browser.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port and timeouts
//   - Storage: S3/MinIO credentials and the browsed bucket
//   - Log: Logging level and format
//   - Browse: Size units and precision of listings
//
// Nested keys map to environment variables by replacing dots with underscores,
// so browse.unit_base is read from BROWSE_UNIT_BASE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
