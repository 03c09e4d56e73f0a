package main

import "github.com/gaurav-prasanna/recipegrab/cmd"

func main() {
	cmd.Execute()
}
