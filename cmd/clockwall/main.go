package main

import "github.com/oshokin/clockwall/cmd/clockwall/cmd"

func main() {
	cmd.Execute()
}
