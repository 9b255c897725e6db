package main

import "github.com/alexiusacademia/framecalc/cmd"

func main() {
	cmd.Execute()
}
