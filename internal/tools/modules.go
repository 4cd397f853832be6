package tools

import (
	"context"
	"fmt"
	"net/http"

	"mentortools-mcp/internal/contracts"
)

func (r *Registry) moduleTools() []ToolSpec {
	return []ToolSpec{
		bind(ToolSpec{
			Name:  Prefix + "list_modules",
			Title: "List Modules",
			Description: `List the modules of a course.

Args:
  - course_id (number, required): Course ID
  - limit (number): Maximum results (1-100, default: 15)
  - offset (number): Skip results for pagination (default: 0)

Returns: Array of modules`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.ListModules, func(ctx context.Context, in contracts.ListModulesInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/courses/v1/%d/modules", in.CourseID), pageQuery(in.PageInput))
		}),

		bind(ToolSpec{
			Name:  Prefix + "get_module",
			Title: "Get Module",
			Description: `Get a module by ID.

Args:
  - module_id (number, required): Module ID

Returns: Module object`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.ModuleID, func(ctx context.Context, in contracts.ModuleIDInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/courses/v1/modules/%d", in.ModuleID), nil)
		}),

		bind(ToolSpec{
			Name:  Prefix + "get_module_info",
			Title: "Get Module Info",
			Description: `Get detailed module information including lessons.

Args:
  - module_id (number, required): Module ID

Returns: Detailed module object`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.ModuleID, func(ctx context.Context, in contracts.ModuleIDInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/courses/v1/modules/%d/info", in.ModuleID), nil)
		}),

		bind(ToolSpec{
			Name:  Prefix + "create_module",
			Title: "Create Module",
			Description: `Create a module in a course.

Args:
  - course_id (number, required): Parent course ID
  - title (string, required): Module title
  - mandatory, is_published, is_active (boolean, optional): Flags (default: false)
  - public_description, short_description, image_id (string, optional)
  - available_at (number, optional): Availability timestamp in ms
  - order (number, optional): Position in the course

Returns: ID of the newly created module`,
			OpenWorld: true,
		}, contracts.CreateModule, func(ctx context.Context, in contracts.CreateModuleInput) (string, error) {
			return r.create(ctx, fmt.Sprintf("/courses/v1/%d/modules", in.CourseID), in.Module, "Module")
		}),

		bind(ToolSpec{
			Name:  Prefix + "update_module",
			Title: "Update Module (Patch)",
			Description: `Update module information. Only provided fields are changed.

Args:
  - module_id (number, required): Module ID to update
  - title, mandatory, is_published, etc. (optional): Fields to update

Returns: Success status`,
			Idempotent: true, OpenWorld: true,
		}, contracts.UpdateModule, func(ctx context.Context, in contracts.ModuleChangeInput) (string, error) {
			return r.update(ctx, http.MethodPatch, fmt.Sprintf("/courses/v1/modules/%d", in.ModuleID), in.Module, "Module")
		}),

		bind(ToolSpec{
			Name:  Prefix + "replace_module",
			Title: "Replace Module",
			Description: `Replace all module settings. Takes the same fields as create_module plus a required order.

Args:
  - module_id (number, required): Module ID to replace
  - title (string, required): Module title
  - order (number, required): Position in the course

Returns: Success status`,
			Idempotent: true, OpenWorld: true,
		}, contracts.ReplaceModule, func(ctx context.Context, in contracts.ModuleChangeInput) (string, error) {
			return r.update(ctx, http.MethodPut, fmt.Sprintf("/courses/v1/modules/%d", in.ModuleID), in.Module, "Module")
		}),

		bind(ToolSpec{
			Name:  Prefix + "delete_module",
			Title: "Delete Module",
			Description: `Delete a module permanently. This cannot be undone.

Args:
  - module_id (number, required): Module ID to delete

Returns: Success status`,
			Destructive: true, OpenWorld: true,
		}, contracts.ModuleID, func(ctx context.Context, in contracts.ModuleIDInput) (string, error) {
			return r.remove(ctx, fmt.Sprintf("/courses/v1/modules/%d", in.ModuleID), "Module")
		}),
	}
}

func (r *Registry) submoduleTools() []ToolSpec {
	return []ToolSpec{
		bind(ToolSpec{
			Name:  Prefix + "list_submodules",
			Title: "List Submodules",
			Description: `List the submodules of a module.

Args:
  - module_id (number, required): Module ID
  - limit (number): Maximum results (1-100, default: 15)
  - offset (number): Skip results for pagination (default: 0)

Returns: Array of submodules`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.ListSubmodules, func(ctx context.Context, in contracts.ListSubmodulesInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/courses/v1/modules/%d/submodules", in.ModuleID), pageQuery(in.PageInput))
		}),

		bind(ToolSpec{
			Name:  Prefix + "get_submodule",
			Title: "Get Submodule",
			Description: `Get a submodule by ID.

Args:
  - submodule_id (number, required): Submodule ID

Returns: Submodule object`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.SubmoduleID, func(ctx context.Context, in contracts.SubmoduleIDInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/courses/v1/submodules/%d", in.SubmoduleID), nil)
		}),

		bind(ToolSpec{
			Name:  Prefix + "create_submodule",
			Title: "Create Submodule",
			Description: `Create a submodule that groups lessons inside a module.

Args:
  - module_id (number, required): Parent module ID
  - title (string, required): Submodule title
  - order (number, required): Position in the module
  - is_published (boolean, optional): Published (default: false)

Returns: ID of the newly created submodule`,
			OpenWorld: true,
		}, contracts.CreateSubmodule, func(ctx context.Context, in contracts.CreateSubmoduleInput) (string, error) {
			return r.create(ctx, fmt.Sprintf("/courses/v1/modules/%d/submodules", in.ModuleID), in.Submodule, "Submodule")
		}),

		bind(ToolSpec{
			Name:  Prefix + "update_submodule",
			Title: "Update Submodule (Patch)",
			Description: `Update submodule information. Only provided fields are changed.

Args:
  - submodule_id (number, required): Submodule ID to update
  - title, order, is_published (optional): Fields to update

Returns: Success status`,
			Idempotent: true, OpenWorld: true,
		}, contracts.UpdateSubmodule, func(ctx context.Context, in contracts.SubmoduleChangeInput) (string, error) {
			return r.update(ctx, http.MethodPatch, fmt.Sprintf("/courses/v1/submodules/%d", in.SubmoduleID), in.Submodule, "Submodule")
		}),

		bind(ToolSpec{
			Name:  Prefix + "delete_submodule",
			Title: "Delete Submodule",
			Description: `Delete a submodule permanently. This cannot be undone.

Args:
  - submodule_id (number, required): Submodule ID to delete

Returns: Success status`,
			Destructive: true, OpenWorld: true,
		}, contracts.SubmoduleID, func(ctx context.Context, in contracts.SubmoduleIDInput) (string, error) {
			return r.remove(ctx, fmt.Sprintf("/courses/v1/submodules/%d", in.SubmoduleID), "Submodule")
		}),
	}
}
