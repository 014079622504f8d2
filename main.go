package main

import (
	"github.com/beyondstorage/beyond-urlconn/cmd"
)

func main() {
	cmd.Execute()
}
