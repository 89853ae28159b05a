package main

import "tubetrans/cmd"

func main() {
	cmd.Execute()
}
