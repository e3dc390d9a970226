package main

import "github.com/ofwlens/ofwlens/cmd"

func main() {
	cmd.Execute()
}
