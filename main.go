package main

import "github.com/masera/storefront/cmd"

func main() {
	cmd.Execute()
}
