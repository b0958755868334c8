package main

import "github.com/minhle/roomstay/cmd/roomstay/cmd"

func main() {
	cmd.Execute()
}
