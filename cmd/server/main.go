package main

import (
	"github.com/partshub/catalog-service/cmd"
)

func main() {
	cmd.Execute()
}
