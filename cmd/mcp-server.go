package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/registry"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/version"
)

const requestArgument = "request"

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Launch the handler MCP server",
	Long:  `Launch an MCP server on stdio that exposes one tool per resource type and handler action.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newMCPServer(registry.Registry)
		if err := server.ServeStdio(s); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func newMCPServer(reg *registry.HandlerRegistry) *server.MCPServer {
	s := server.NewMCPServer(
		"Entity Resolution CloudFormation Handlers",
		version.FullVersion(),
		server.WithLogging(),
	)

	for _, typeName := range reg.TypeNames() {
		entry, ok := reg.GetRegistryEntry(typeName)
		if !ok {
			continue
		}
		for _, action := range cfn.Actions {
			s.AddTool(handlerTool(entry, action), toolHandler(entry, action))
		}
	}
	return s
}

// toolName is service-resource-action, e.g. entityresolution-matchingworkflow-create.
func toolName(entry registry.RegistryEntry, action cfn.Action) string {
	return strings.Join([]string{
		entry.TypeHierarchy.Service,
		entry.TypeHierarchy.Resource,
		strings.ToLower(string(action)),
	}, "-")
}

func handlerTool(entry registry.RegistryEntry, action cfn.Action) mcp.Tool {
	description := fmt.Sprintf("Run the %s handler of %s.\n\n%s\nIdentifier: %s\nReferences: %s",
		action,
		entry.TypeName,
		entry.Metadata.Description,
		entry.Metadata.Identifier,
		strings.Join(entry.Metadata.References, ", "),
	)

	return mcp.NewTool(toolName(entry, action),
		mcp.WithDescription(description),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{
			Title:         fmt.Sprintf("%s %s", entry.Metadata.Name, action),
			OpenWorldHint: mcp.ToBoolPtr(true),
		}),
		mcp.WithString(requestArgument,
			mcp.Description("Handler request as a JSON document, e.g. {\"desiredResourceState\": {...}}"),
			mcp.Required(),
		),
	)
}

// requestPayload accepts the request argument either as a JSON string or as an object.
func requestPayload(args map[string]any) ([]byte, error) {
	raw, ok := args[requestArgument]
	if !ok || raw == nil {
		return nil, fmt.Errorf("missing %q argument", requestArgument)
	}

	switch v := raw.(type) {
	case string:
		if !json.Valid([]byte(v)) {
			return nil, fmt.Errorf("%q argument is not valid JSON", requestArgument)
		}
		return []byte(v), nil
	default:
		return json.Marshal(v)
	}
}

func toolHandler(entry registry.RegistryEntry, action cfn.Action) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		payload, err := requestPayload(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		event, err := session.invoke(ctx, entry, action, payload)
		if err != nil {
			logger.Error("Handler invocation failed", "tool", request.Params.Name, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := checkEvent(entry, action, event); err != nil {
			logger.Warn("Handler reported failure", "tool", request.Params.Name, "error", err)
			return mcp.NewToolResultError(string(event)), nil
		}
		return mcp.NewToolResultText(string(event)), nil
	}
}
