package main

import (
	"fmt"

	cli "github.com/drewr/tools.cli"
)

func main() {
	r := cli.MustParse(
		cli.Spec{"-p", "--port", "Listen on this port", cli.KeyDefault, 8080, cli.KeyParse, cli.ToInt},
		cli.Spec{"--host", "The hostname", cli.KeyDefault, "localhost"},
		cli.Spec{"--[no-]verbose", "Print extra output"},
		cli.Spec{"-t", "--tag", "May be repeated", cli.KeyAssign, cli.Append},
	)

	fmt.Println("options: ", r.Options)
	fmt.Println("leftovers:", r.Leftovers)
	fmt.Println()
	fmt.Print(r.Banner)
}
