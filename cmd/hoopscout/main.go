package main

import "github.com/tbraden/hoopscout/internal/cli"

func main() {
	cli.Execute()
}
