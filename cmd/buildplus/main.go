package main

import (
	"github.com/simplesurance/buildplus/internal/command"
)

func main() {
	command.Execute()
}
