package main

import "github.com/roberto426/Examen2-7234547/cmd"

func main() {
	cmd.Execute()
}
