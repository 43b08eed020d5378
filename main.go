package main

import "github.com/S4yfullXD/super-intelligent-scanner/cmd"

func main() {
	cmd.Execute()
}
