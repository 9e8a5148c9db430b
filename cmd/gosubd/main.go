package main

import "github.com/substratekit/gosubd/internal/cli"

func main() {
	cli.Execute()
}
