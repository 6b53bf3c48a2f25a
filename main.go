package main

import "github.com/jsphweid/percmap/cmd"

func main() {
	cmd.Execute()
}
