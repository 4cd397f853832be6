package contracts

import "mentortools-mcp/internal/schema"

var CourseID = ID("course_id", "Course ID")

var ListCourses = Pagination.Extend(
	schema.Bool("archived", "Include archived courses").Default(false),
).Named("list_courses")

var CountCourses = ListCourses.Pick("archived").Named("count_courses")

var CourseCreate = schema.New("course_create",
	title("Title of the course").Require(),
	schema.Str("description", "Description of the course"),
	schema.Str("image_id", "ID of the course image from media storage"),
	schema.Str("url", "URL of the sales page"),
	schema.Str("payload", "Additional content (text or HTML)"),
	schema.OneOf("module_view_type", "How modules are displayed: 'list' or 'grid'", ModuleViewTypes...),
	schema.OneOf("payment_type", "Payment type: 'paid' or 'free'", PaymentTypes...),
	schema.OneOf("course_access_type", "Access type: 'subscription', 'one_time', or 'number_of_days_access'", AccessTypes...),
	schema.Int("number_days_access", "Number of days access (if access type is 'number_of_days_access')").AtLeast(0),
	schema.Bool("is_active", "Whether the course is active").Require(),
	schema.Bool("is_secret", "Whether the course is hidden from public listing").Require(),
	schema.Bool("is_archived", "Whether the course is archived").Require(),
	schema.Bool("is_displayed_in_app", "Whether shown in mobile app").Require(),
	schema.Bool("is_offline_downloadable", "Whether downloadable for offline access").Require(),
	schema.Int("available_at", "Availability timestamp in milliseconds"),
	schema.Bool("launch_date_enabled", "Enable launch date"),
	schema.Int("launch_date", "Launch date timestamp in milliseconds"),
	schema.Int("order", "Order position in the list"),
)

var CourseUpdate = CourseCreate.Extend(
	schema.Int("order", "Order position in the list (required for update)").Require(),
).Named("course_update")

var CoursePatch = CourseCreate.Partial().Named("course_patch")

// Tool-facing contracts: the identifier travels next to the body fields.
var (
	CreateCourse  = CourseCreate.Named("create_course")
	ReplaceCourse = CourseID.Merge(CourseUpdate).Named("replace_course")
	UpdateCourse  = CourseID.Merge(CoursePatch).Named("update_course")
)

type ListCoursesInput struct {
	PageInput
	Archived bool `json:"archived"`
}

type CountCoursesInput struct {
	Archived bool `json:"archived"`
}

type CourseIDInput struct {
	CourseID int64 `json:"course_id"`
}

// Course is the request body for create, replace and patch. Absent pointers
// are omitted, so a patch only carries what the caller supplied.
type Course struct {
	Title                 *string `json:"title,omitempty"`
	Description           *string `json:"description,omitempty"`
	ImageID               *string `json:"image_id,omitempty"`
	URL                   *string `json:"url,omitempty"`
	Payload               *string `json:"payload,omitempty"`
	ModuleViewType        *string `json:"module_view_type,omitempty"`
	PaymentType           *string `json:"payment_type,omitempty"`
	CourseAccessType      *string `json:"course_access_type,omitempty"`
	NumberDaysAccess      *int64  `json:"number_days_access,omitempty"`
	IsActive              *bool   `json:"is_active,omitempty"`
	IsSecret              *bool   `json:"is_secret,omitempty"`
	IsArchived            *bool   `json:"is_archived,omitempty"`
	IsDisplayedInApp      *bool   `json:"is_displayed_in_app,omitempty"`
	IsOfflineDownloadable *bool   `json:"is_offline_downloadable,omitempty"`
	AvailableAt           *int64  `json:"available_at,omitempty"`
	LaunchDateEnabled     *bool   `json:"launch_date_enabled,omitempty"`
	LaunchDate            *int64  `json:"launch_date,omitempty"`
	Order                 *int64  `json:"order,omitempty"`
}

type CourseChangeInput struct {
	CourseID int64 `json:"course_id"`
	Course
}
