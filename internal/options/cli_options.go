package options

import "regexp"

var ProfileOpt = Option{
	Name:        "profile",
	Short:       "p",
	Description: "AWS shared config profile",
	Type:        String,
}

var RegionOpt = Option{
	Name:        "region",
	Description: "AWS region; defaults to the profile's region",
	Type:        String,
	ValueFormat: regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d$`),
}

var LogLevelOpt = Option{
	Name:        "log-level",
	Description: "log level",
	Type:        String,
	Value:       "info",
	ValueList:   []string{"debug", "info", "warn", "error"},
}

var NoColorOpt = Option{
	Name:        "no-color",
	Description: "disable colored output",
	Type:        Bool,
	Value:       "false",
}

var QuietOpt = Option{
	Name:        "quiet",
	Short:       "q",
	Description: "suppress informational messages",
	Type:        Bool,
	Value:       "false",
}

var TypeOpt = Option{
	Name:        "type",
	Short:       "t",
	Description: "CloudFormation resource type, e.g. AWS::EntityResolution::MatchingWorkflow",
	Required:    true,
	Type:        String,
	ValueFormat: regexp.MustCompile(`^(AWS::[A-Za-z0-9]+::[A-Za-z0-9]+|[a-z0-9]+)$`),
}

var ActionOpt = Option{
	Name:        "action",
	Short:       "a",
	Description: "handler action",
	Required:    true,
	Type:        String,
	ValueList:   []string{"CREATE", "READ", "UPDATE", "DELETE", "LIST"},
}

var RequestOpt = Option{
	Name:        "request",
	Short:       "r",
	Description: "handler request file (JSON or YAML); '-' reads stdin",
	Required:    true,
	Type:        String,
}

var QueryOpt = Option{
	Name:        "query",
	Description: "jq expression applied to the progress event",
	Type:        String,
}

// GlobalOptions are registered on the root command.
var GlobalOptions = []*Option{&ProfileOpt, &RegionOpt, &LogLevelOpt, &NoColorOpt, &QuietOpt}

var OutputOpt = Option{
	Name:        "output",
	Short:       "o",
	Description: "directory to also save the progress event in",
	Type:        String,
}

var FileNameOpt = Option{
	Name:        "file",
	Description: "file name for --output; defaults to <resource>-<action>-<id>.json",
	Type:        String,
}
