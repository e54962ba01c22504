package main

import "github.com/tinoosan/consolebank/internal/cli"

func main() {
	cli.Execute()
}
