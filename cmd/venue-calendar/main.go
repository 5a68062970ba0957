package main

import "github.com/mhofbauer/venue-calendar/internal/cli"

func main() {
	cli.Execute()
}
