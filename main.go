package main

import "csviz/cmd"

func main() {
	cmd.Execute()
}
