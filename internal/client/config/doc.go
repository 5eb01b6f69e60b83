// Package config loads runtime configuration for the Crammer+ client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config, or the
//     CRAMMER_CONFIG environment variable. JSON, or YAML for .yaml/.yml.
//  3. Environment variables with the CRAMMER_ prefix, e.g. CRAMMER_BASE_URL,
//     CRAMMER_ONLINE_CHECK_INTERVAL=5s.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the API
//	-s string   path of the local credential database
//	-i int      online status check interval (seconds)
//	-l string   log level
//
// # File schema
//
//	{
//	  "base_url": "http://localhost:8000/api/v1",
//	  "store_path": "crammer.db",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "log_backend": "slog",
//	  "log_file": ""
//	}
package config
