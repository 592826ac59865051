package main

import "github.com/mtrevizo/tablero/cmd"

func main() {
	cmd.Execute()
}
