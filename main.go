package main

import "stride/cmd"

func main() {
	cmd.Execute()
}
