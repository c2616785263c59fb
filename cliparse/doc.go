// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DataPath: CSV file served at /election_data.csv (default: data/election_data.csv)
  - SourceURL: Remote CSV loaded instead of DataPath (optional)
  - Title: Page title
  - Debug: Debug logging and strict state checks
  - Headers: Header policy variant, embed origin, frame ancestors
  - Schema: CSV columns and candidate labels/colors

# Precedence

Later sources win:

	defaults < TOML file < environment < flags

A .env file (-env, default ".env") is loaded into the environment first.
Variables already set in the process environment are not overwritten.

# CLI Flags

	-p                Server port
	-data             Data file path
	-source           Remote CSV URL
	-c                TOML config file
	-title            Page title
	-debug            Debug mode
	-headers          named or wildcard
	-origin           Embed origin
	-frame-ancestors  Space separated CSP sources
	-env              dotenv file

# Environment Variables

	PORT            → -p
	DATA_PATH       → -data
	SOURCE_URL      → -source
	CONFIG_FILE     → -c
	TITLE           → -title
	DEBUG           → -debug
	HEADER_VARIANT  → -headers
	EMBED_ORIGIN    → -origin
	FRAME_ANCESTORS → -frame-ancestors

# Config File

	title = "Los Angeles County 2024 presidential election results by neighborhood"

	[server]
	port = 3318

	[headers]
	variant = "named"
	embed_origin = "https://mappingtheborder.com"

	[schema]
	location_column = "LOCATION"
	type_column = "TYPE"

	[[schema.candidates]]
	column = "KAMALA D HARRIS"
	label = "Harris"
	color = "#0066CC"

	[[schema.candidates]]
	column = "DONALD J TRUMP"
	label = "Trump"
	color = "#CC0000"

Exactly two candidates must be declared.

# Validation

ParseFlags returns an error for a port outside 1-65535, an unknown header
variant, a wildcard or empty embed origin, or an invalid schema (missing
column, duplicate column, reserved label, color not in #RRGGBB form).
*/
package cliparse
