package cmd

// import resource types so their init() functions register them

import (
	_ "github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/idmappingworkflow"
	_ "github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/matchingworkflow"
	_ "github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/entityresolution/schemamapping"
)
