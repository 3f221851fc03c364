package main

import "bucket-browser/cmd"

func main() {
	cmd.Execute()
}
