package main

import "salon-verifier/cmd"

func main() {
	cmd.Execute()
}
