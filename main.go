package main

import "github.com/oleocontrol/oleocontrol/cmd"

func main() {
	cmd.Execute()
}
