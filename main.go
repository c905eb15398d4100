package main

import "github.com/medimind/backend/cmd"

func main() {
	cmd.Execute()
}
