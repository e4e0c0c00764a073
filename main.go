package main

import "github.com/kesh-dev/correlate/cmd"

func main() {
	cmd.Execute()
}
