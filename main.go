package main

import "github.com/siutin/scheme-go/cmd"

func main() {
	cmd.Execute()
}
