package main

import "jspark.dev/cmd"

func main() {
	cmd.Execute()
}
