package main

import "github.com/josephlewis42/opgen/cmd"

func main() {
	cmd.Execute()
}
