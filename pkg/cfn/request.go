// Package cfn carries the CloudFormation resource handler contract: the request a handler
// receives, the progress event it returns and the error codes it may fail with.
package cfn

import (
	"fmt"
	"strings"
)

// Action names one handler entry point.
type Action string

const (
	Create Action = "CREATE"
	Read   Action = "READ"
	Update Action = "UPDATE"
	Delete Action = "DELETE"
	List   Action = "LIST"
)

// Actions lists every action in the order CloudFormation documents them.
var Actions = []Action{Create, Read, Update, Delete, List}

// ParseAction accepts an action name in any case.
func ParseAction(s string) (Action, error) {
	candidate := Action(strings.ToUpper(strings.TrimSpace(s)))
	for _, a := range Actions {
		if a == candidate {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown handler action %q", s)
}

// Request is the per-invocation input of a handler. M is the resource model of the
// resource type being handled.
type Request[M any] struct {
	ClientRequestToken        string            `json:"clientRequestToken,omitempty"`
	DesiredResourceState      *M                `json:"desiredResourceState,omitempty"`
	PreviousResourceState     *M                `json:"previousResourceState,omitempty"`
	DesiredResourceTags       map[string]string `json:"desiredResourceTags,omitempty"`
	PreviousResourceTags      map[string]string `json:"previousResourceTags,omitempty"`
	SystemTags                map[string]string `json:"systemTags,omitempty"`
	PreviousSystemTags        map[string]string `json:"previousSystemTags,omitempty"`
	AwsAccountID              string            `json:"awsAccountId,omitempty"`
	AwsPartition              string            `json:"awsPartition,omitempty"`
	Region                    string            `json:"region,omitempty"`
	LogicalResourceIdentifier string            `json:"logicalResourceIdentifier,omitempty"`
	StackID                   string            `json:"stackId,omitempty"`
	NextToken                 string            `json:"nextToken,omitempty"`
}

// Desired returns the desired resource state, or a zero model when the request carries none.
func (r *Request[M]) Desired() *M {
	if r.DesiredResourceState == nil {
		r.DesiredResourceState = new(M)
	}
	return r.DesiredResourceState
}
