package main

import (
	"os"

	"github.com/usmansaleem/blog-static-generator/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
