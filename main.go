package main

import (
	"github.com/stepview/stepview/cmd"
)

func main() {
	cmd.Execute()
}
