// Package contracts holds the input contracts of every Mentortools tool and
// the typed values they decode into.
package contracts

import "mentortools-mcp/internal/schema"

const (
	DefaultLimit      = 15
	DefaultMediaLimit = 100
	MaxLimit          = 100
	MaxTitleLength    = 255
)

var (
	ModuleViewTypes   = []string{"list", "grid"}
	PaymentTypes      = []string{"paid", "free"}
	AccessTypes       = []string{"subscription", "one_time", "number_of_days_access"}
	LessonTypes       = []string{"lesson", "quiz"}
	ContentBlockTypes = []string{"text", "html", "btn", "video", "audio", "pdf", "quiz_text", "quiz_video", "quiz_audio", "certificate"}
	ButtonPositions   = []string{"left", "center", "right"}
	ButtonSizes       = []string{"small", "medium", "large"}
	ButtonTargets     = []string{"_self", "_blank"}
)

// Empty accepts only {}.
var Empty = schema.New("empty")

// Pagination is shared by every course-side list operation.
var Pagination = paginationWithDefault(DefaultLimit)

// MediaPagination is Pagination with the media storage default page size.
var MediaPagination = paginationWithDefault(DefaultMediaLimit)

func paginationWithDefault(limit int) *schema.Contract {
	return schema.New("pagination",
		schema.Int("limit", "Maximum results to return").Range(1, MaxLimit).Default(limit),
		schema.Int("offset", "Number of results to skip for pagination").AtLeast(0).Default(0),
	)
}

// ID builds the single positive identifier contract for an entity.
func ID(field, description string) *schema.Contract {
	return schema.New(field, idField(field, description))
}

func idField(field, description string) schema.Field {
	return schema.Int(field, description).Positive().Require()
}

func title(description string) schema.Field {
	return schema.Str("title", description).Length(1, MaxTitleLength)
}

type PageInput struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func ptr[T any](v T) *T { return &v }
