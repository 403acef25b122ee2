package main

import (
	"github.com/ujjwalsh/gfapy/cmd"
)

func main() {
	cmd.Execute()
}
