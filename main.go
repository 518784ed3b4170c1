package main

import "github.com/half-rabbit/geode/cmd"

func main() {
	cmd.Execute()
}
