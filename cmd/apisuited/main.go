package main

import (
	"log"

	"github.com/nicheapis/apisuite/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
