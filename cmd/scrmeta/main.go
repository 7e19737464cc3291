package main

import "osgi-mock/internal/cli"

func main() {
	cli.Execute()
}
