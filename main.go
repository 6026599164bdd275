package main

import "github.com/endorses/cwsearch/cmd"

func main() {
	cmd.Execute()
}
