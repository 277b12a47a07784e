package main

import "github.com/redbadger/create-deployment/cmd"

func main() {
	cmd.Execute()
}
