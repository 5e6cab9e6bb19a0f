// Package main provides the abbr CLI.
package main

import "github.com/mesh-intelligence/abbr/internal/cli"

func main() {
	cli.Execute()
}
