package main

import "github.com/adrianlim/onboarding-tracker/cmd"

func main() {
	cmd.Execute()
}
