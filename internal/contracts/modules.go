package contracts

import "mentortools-mcp/internal/schema"

var ModuleID = ID("module_id", "Module ID")

var ListModules = CourseID.Merge(Pagination).Named("list_modules")

var ModuleCreate = schema.New("module_create",
	title("Module title").Require(),
	schema.Bool("mandatory", "Is mandatory").Default(false),
	schema.Bool("is_published", "Is published").Default(false),
	schema.Bool("is_active", "Is active").Default(false),
	schema.Str("public_description", "Public description"),
	schema.Str("short_description", "Short description"),
	schema.Str("image_id", "Image ID from media storage"),
	schema.Int("available_at", "Availability timestamp in ms"),
	schema.Int("order", "Order position"),
)

var ModuleUpdate = ModuleCreate.Extend(
	schema.Int("order", "Order position (required for update)").Require(),
).Named("module_update")

var ModulePatch = ModuleCreate.Partial().Named("module_patch")

var (
	CreateModule  = CourseID.Merge(ModuleCreate).Named("create_module")
	ReplaceModule = ModuleID.Merge(ModuleUpdate).Named("replace_module")
	UpdateModule  = ModuleID.Merge(ModulePatch).Named("update_module")
)

type ListModulesInput struct {
	CourseID int64 `json:"course_id"`
	PageInput
}

type ModuleIDInput struct {
	ModuleID int64 `json:"module_id"`
}

type Module struct {
	Title             *string `json:"title,omitempty"`
	Mandatory         *bool   `json:"mandatory,omitempty"`
	IsPublished       *bool   `json:"is_published,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
	PublicDescription *string `json:"public_description,omitempty"`
	ShortDescription  *string `json:"short_description,omitempty"`
	ImageID           *string `json:"image_id,omitempty"`
	AvailableAt       *int64  `json:"available_at,omitempty"`
	Order             *int64  `json:"order,omitempty"`
}

type CreateModuleInput struct {
	CourseID int64 `json:"course_id"`
	Module
}

type ModuleChangeInput struct {
	ModuleID int64 `json:"module_id"`
	Module
}

var SubmoduleID = ID("submodule_id", "Submodule ID")

var ListSubmodules = ModuleID.Merge(Pagination).Named("list_submodules")

var SubmoduleCreate = schema.New("submodule_create",
	title("Submodule title").Require(),
	schema.Int("order", "Order position").Require(),
	schema.Bool("is_published", "Is published").Default(false),
)

var SubmodulePatch = SubmoduleCreate.Partial().Named("submodule_patch")

var (
	CreateSubmodule = ModuleID.Merge(SubmoduleCreate).Named("create_submodule")
	UpdateSubmodule = SubmoduleID.Merge(SubmodulePatch).Named("update_submodule")
)

type ListSubmodulesInput struct {
	ModuleID int64 `json:"module_id"`
	PageInput
}

type SubmoduleIDInput struct {
	SubmoduleID int64 `json:"submodule_id"`
}

type Submodule struct {
	Title       *string `json:"title,omitempty"`
	Order       *int64  `json:"order,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

type CreateSubmoduleInput struct {
	ModuleID int64 `json:"module_id"`
	Submodule
}

type SubmoduleChangeInput struct {
	SubmoduleID int64 `json:"submodule_id"`
	Submodule
}
