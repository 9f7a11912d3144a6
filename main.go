package main

import "github.com/jjenkins/narou-reader/cmd"

func main() {
	cmd.Execute()
}
