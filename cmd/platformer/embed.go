package main

import "embed"

// configFS holds the shipped configs, used when --config is not given
//
//go:embed configs
var configFS embed.FS
