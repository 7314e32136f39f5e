package main

import "github.com/varadharajaan/spot-advisor/cmd"

func main() {
	cmd.Execute()
}
