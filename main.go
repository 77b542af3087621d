package main

import "github.com/fakeyudi/capturecli/cmd"

func main() {
	cmd.Execute()
}
