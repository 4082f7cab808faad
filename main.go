package main

import "github.com/julienpequegnot/feedseek/cmd"

func main() {
	cmd.Execute()
}
