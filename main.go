package main

import "github.com/user/scanreport/cmd"

func main() {
	cmd.Execute()
}
