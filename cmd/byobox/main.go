package main

import "github.com/aalvaropc/byobox/internal/cli"

func main() {
	cli.Execute()
}
