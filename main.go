package main

import (
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/cmd"
)

func main() {
	cmd.Execute()
}
