package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"mentortools-mcp/internal/contracts"
)

func (r *Registry) courseTools() []ToolSpec {
	return []ToolSpec{
		bind(ToolSpec{
			Name:  Prefix + "list_courses",
			Title: "List Courses",
			Description: `List courses in Mentortools with pagination support.

Returns basic course data. Use mentortools_get_course_info for the detailed view.

Args:
  - limit (number): Maximum results (1-100, default: 15)
  - offset (number): Skip results for pagination (default: 0)
  - archived (boolean): Include archived courses (default: false)

Returns: Array of courses with id, title, description, is_active, is_secret, etc.`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.ListCourses, func(ctx context.Context, in contracts.ListCoursesInput) (string, error) {
			q := pageQuery(in.PageInput)
			q.Set("archived", strconv.FormatBool(in.Archived))
			return r.getJSON(ctx, "/courses/v1/", q)
		}),

		bind(ToolSpec{
			Name:  Prefix + "count_courses",
			Title: "Count Courses",
			Description: `Get the total number of courses.

Args:
  - archived (boolean): Count archived courses (default: false)

Returns: Total number of courses`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.CountCourses, func(ctx context.Context, in contracts.CountCoursesInput) (string, error) {
			q := url.Values{"archived": {strconv.FormatBool(in.Archived)}}
			return r.count(ctx, "/courses/v1/count", q, "Total courses")
		}),

		bind(ToolSpec{
			Name:  Prefix + "get_course",
			Title: "Get Course",
			Description: `Get a course by ID.

Args:
  - course_id (number, required): Course ID

Returns: Course object`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.CourseID, func(ctx context.Context, in contracts.CourseIDInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/courses/v1/%d", in.CourseID), nil)
		}),

		bind(ToolSpec{
			Name:  Prefix + "get_course_info",
			Title: "Get Course Info",
			Description: `Get detailed course information including modules and statistics.

Args:
  - course_id (number, required): Course ID

Returns: Detailed course object`,
			ReadOnly: true, Idempotent: true, OpenWorld: true,
		}, contracts.CourseID, func(ctx context.Context, in contracts.CourseIDInput) (string, error) {
			return r.getJSON(ctx, fmt.Sprintf("/courses/v1/%d/info", in.CourseID), nil)
		}),

		bind(ToolSpec{
			Name:  Prefix + "create_course",
			Title: "Create Course",
			Description: `Create a new course in Mentortools.

Args:
  - title (string, required): Course title
  - is_active (boolean, required): Whether active
  - is_secret (boolean, required): Whether hidden
  - is_archived (boolean, required): Whether archived
  - is_displayed_in_app (boolean, required): Show in mobile app
  - is_offline_downloadable (boolean, required): Allow offline download
  - description (string, optional): Course description
  - image_id (string, optional): Image ID from media storage
  - payment_type (string, optional): 'paid' or 'free'
  - module_view_type (string, optional): 'list' or 'grid'
  - course_access_type (string, optional): 'subscription', 'one_time', or 'number_of_days_access'

Returns: ID of the newly created course`,
			OpenWorld: true,
		}, contracts.CreateCourse, func(ctx context.Context, in contracts.Course) (string, error) {
			return r.create(ctx, "/courses/v1/", in, "Course")
		}),

		bind(ToolSpec{
			Name:  Prefix + "update_course",
			Title: "Update Course (Patch)",
			Description: `Update course information. Only provided fields are changed.

Args:
  - course_id (number, required): Course ID to update
  - title, description, is_active, etc. (optional): Fields to update

Returns: Success status`,
			Idempotent: true, OpenWorld: true,
		}, contracts.UpdateCourse, func(ctx context.Context, in contracts.CourseChangeInput) (string, error) {
			return r.update(ctx, http.MethodPatch, fmt.Sprintf("/courses/v1/%d", in.CourseID), in.Course, "Course")
		}),

		bind(ToolSpec{
			Name:  Prefix + "replace_course",
			Title: "Replace Course",
			Description: `Replace all course settings. Takes the same fields as create_course plus a required order.

Args:
  - course_id (number, required): Course ID to replace
  - order (number, required): Position in the course list
  - title, is_active, is_secret, is_archived, is_displayed_in_app, is_offline_downloadable (required)

Returns: Success status`,
			Idempotent: true, OpenWorld: true,
		}, contracts.ReplaceCourse, func(ctx context.Context, in contracts.CourseChangeInput) (string, error) {
			return r.update(ctx, http.MethodPut, fmt.Sprintf("/courses/v1/%d", in.CourseID), in.Course, "Course")
		}),

		bind(ToolSpec{
			Name:  Prefix + "delete_course",
			Title: "Delete Course",
			Description: `Delete a course permanently. This cannot be undone.

Args:
  - course_id (number, required): Course ID to delete

Returns: Success status`,
			Destructive: true, OpenWorld: true,
		}, contracts.CourseID, func(ctx context.Context, in contracts.CourseIDInput) (string, error) {
			return r.remove(ctx, fmt.Sprintf("/courses/v1/%d", in.CourseID), "Course")
		}),
	}
}
