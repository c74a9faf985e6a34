package main

import "blogapi/cmd/app/commands"

func main() {
	commands.Execute()
}
