package main

import "massnet.org/hexsum/cmd/hexsum/cmd"

func main() {
	cmd.Execute()
}
