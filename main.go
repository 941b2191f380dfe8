package main

import "coursepace/cmd"

func main() {
	cmd.Execute()
}
