package main

import "github.com/mansoorceksport/fitgauge/internal/cli"

func main() {
	cli.Execute()
}
