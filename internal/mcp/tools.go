package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools wires every tool to the handler. Input schemas are
// derived from the typed params structs by the SDK.
func registerTools(server *sdkmcp.Server, h *Handler) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a brand project and generate its first brand concept",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params CreateProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		resp, err := h.CreateProject(ctx, params)
		return nil, resp, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all brand projects, newest first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResponse, error) {
		resp, err := h.ListProjects(ctx)
		return nil, resp, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a project with its full concepts and asset state",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params GetProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		resp, err := h.GetProject(ctx, params)
		return nil, resp, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project and its stored data",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params DeleteProjectParams) (*sdkmcp.CallToolResult, DeleteProjectResponse, error) {
		resp, err := h.DeleteProject(ctx, params)
		return nil, resp, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_concept",
		Description: "Generate one additional brand concept for an existing project",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params AddConceptParams) (*sdkmcp.CallToolResult, ConceptResponse, error) {
		resp, err := h.AddConcept(ctx, params)
		return nil, resp, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "generate_asset",
		Description: "Generate or regenerate one asset slot (logo, moodboard, mockups, social) for a concept",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params GenerateAssetParams) (*sdkmcp.CallToolResult, GenerateAssetResponse, error) {
		resp, err := h.GenerateAsset(ctx, params)
		return nil, resp, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "select_version",
		Description: "Switch a logo or moodboard to an earlier version from its history",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params SelectVersionParams) (*sdkmcp.CallToolResult, SelectVersionResponse, error) {
		resp, err := h.SelectVersion(ctx, params)
		return nil, resp, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "open_concept",
		Description: "Open a concept's guided reveal at its first step, starting generation if needed",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params OpenConceptParams) (*sdkmcp.CallToolResult, StepResponse, error) {
		resp, err := h.OpenConcept(ctx, params)
		return nil, resp, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "next_step",
		Description: "Advance the reveal one step; blocked until the current step's asset is ready",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params NextStepParams) (*sdkmcp.CallToolResult, StepResponse, error) {
		resp, err := h.NextStep(ctx, params)
		return nil, resp, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "previous_step",
		Description: "Move the reveal back one step",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params PreviousStepParams) (*sdkmcp.CallToolResult, StepResponse, error) {
		resp, err := h.PreviousStep(ctx, params)
		return nil, resp, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "goto_step",
		Description: "Jump to a named step; forward jumps require the current step to be ready",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params GotoStepParams) (*sdkmcp.CallToolResult, StepResponse, error) {
		resp, err := h.GotoStep(ctx, params)
		return nil, resp, err
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_progress",
		Description: "Report the reveal's current step and whether it can advance",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params GetProgressParams) (*sdkmcp.CallToolResult, StepResponse, error) {
		resp, err := h.GetProgress(ctx, params)
		return nil, resp, err
	})
}
