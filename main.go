package main

import "eatery/cmd"

func main() {
	cmd.Execute()
}
