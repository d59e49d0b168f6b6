package main

import "github.com/nicheapis/apisuite/pkg/cli"

func main() {
	cli.Execute()
}
