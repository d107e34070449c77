// Package config loads runtime configuration for the findash CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables, after loading .env from the working directory.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the finance API
//	-ai string  base URL of the AI service
//	-s string   path of the local SQLite storage file
//	-t int      request timeout in seconds (0 = none)
//	-l string   log level (debug, info, warn, error)
//
// # Environment
//
//	FINDASH_API_URL, FINDASH_AI_SERVICE_URL, FINDASH_STORAGE_PATH,
//	FINDASH_REQUEST_TIMEOUT ("10s"), FINDASH_LOG_LEVEL, FINDASH_LOG_FORMAT
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "ai_service_url": "http://localhost:8000",
//	  "storage_path": "findash.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
