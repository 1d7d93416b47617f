package main

import "github.com/rshell-dev/rshell/cmd"

func main() {
	cmd.Execute()
}
