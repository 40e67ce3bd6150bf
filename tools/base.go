// Package tools exposes the resume flows as MCP tools with JSON inputs and a
// uniform success/error envelope.
package tools

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// Tool is one resume operation callable by an external agent. Execute
// takes the JSON arguments and answers with a ToolResult envelope.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]any
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// ToolRegistry indexes the resume tools by name. It is safe for concurrent use.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewToolRegistry creates an empty registry
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{tools: make(map[string]Tool)}
}

// Register adds a tool to the registry, replacing one with the same name
func (r *ToolRegistry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
}

// Get looks a tool up by name, e.g. "polish_resume"
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns the tools ordered by name so listings are stable
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	r.mu.RUnlock()

	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	return tools
}

// GetToolDefinitions describes the tools as {name, description, parameters}
// for GET /api/tools
func (r *ToolRegistry) GetToolDefinitions() []map[string]any {
	registered := r.List()
	definitions := make([]map[string]any, 0, len(registered))
	for _, tool := range registered {
		definitions = append(definitions, map[string]any{
			"name":        tool.Name(),
			"description": tool.Description(),
			"parameters":  tool.InputSchema(),
		})
	}
	return definitions
}

// ToolResult is the envelope every resume tool answers with
type ToolResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NewSuccessResult wraps data in a successful tool result
func NewSuccessResult(data any) (json.RawMessage, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(ToolResult{Success: true, Data: payload})
}

// NewErrorResult reports a tool failure inside the envelope
func NewErrorResult(message string) (json.RawMessage, error) {
	return json.Marshal(ToolResult{Error: message})
}
