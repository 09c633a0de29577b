package main

import "github.com/lepinkainen/bookexplorer/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
