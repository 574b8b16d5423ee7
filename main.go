package main

import "github.com/azlan-mn/element/pkg/cli"

func main() {
	cli.Execute()
}
