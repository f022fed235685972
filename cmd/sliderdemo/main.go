package main

import "github.com/edward-ap/minislider/cmd/sliderdemo/cmd"

func main() {
	cmd.Execute()
}
