package main

import "github.com/timvw/todo-tui/cmd"

func main() {
	cmd.Execute()
}
