package main

import "github.com/alexiusacademia/gowib/cmd"

func main() {
	cmd.Execute()
}
