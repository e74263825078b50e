package main

import "asset-exchange/cmd"

func main() {
	cmd.Execute()
}
