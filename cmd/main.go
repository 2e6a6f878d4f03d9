package main

import "mvp_launchpad/internal/cli"

func main() {
	cli.Execute()
}
