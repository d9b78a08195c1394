package main

import "embed"

// gameFS holds the configuration and assets shipped with the binary
//
//go:embed configs assets
var gameFS embed.FS
