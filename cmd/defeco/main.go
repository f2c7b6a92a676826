package main

import "github.com/edatools/defeco/cmd/defeco/cmd"

func main() {
	cmd.Execute()
}
