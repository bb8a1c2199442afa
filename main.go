package main

import (
	"log"

	"github.com/fairpaycheck/fairpaycheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
