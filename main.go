package main

import "github.com/klytics/apsheet/cmd"

func main() {
	cmd.Execute()
}
