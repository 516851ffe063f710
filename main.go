package main

import commands "github.com/vladimir-rom/blueorgreen/cmd"

func main() {
	commands.Execute()
}
