package main

import "github.com/wjwat/porkpy/cmd"

func main() {
	cmd.Execute()
}
