// Package main is the single-binary entrypoint for LandLord — the medieval
// progression engine for real-estate agents.
package main

import "github.com/bunkeboy/landlord/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
