package main

import "github.com/TuftsBCB/phylo/cmd/phylo/cmd"

func main() {
	cmd.Execute()
}
