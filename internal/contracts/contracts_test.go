package contracts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentortools-mcp/internal/schema"
)

func TestListContractsRejectLimitOutOfRange(t *testing.T) {
	lists := map[string]struct {
		contract *schema.Contract
		base     string
	}{
		"list_courses":     {ListCourses, ``},
		"list_modules":     {ListModules, `"course_id": 1,`},
		"list_lessons":     {ListLessons, `"module_id": 1,`},
		"list_submodules":  {ListSubmodules, `"module_id": 1,`},
		"list_files":       {ListFiles, ``},
		"list_all_files":   {ListAllFiles, ``},
		"list_folders":     {ListFolders, ``},
		"list_all_folders": {ListAllFolders, ``},
	}

	for name, tc := range lists {
		t.Run(name, func(t *testing.T) {
			for _, limit := range []string{"0", "101"} {
				_, err := tc.contract.Validate(json.RawMessage(`{` + tc.base + `"limit": ` + limit + `}`))
				assert.ErrorIs(t, err, schema.ErrInvalidInput, "limit=%s", limit)
			}
			_, err := tc.contract.Validate(json.RawMessage(`{` + tc.base + `"limit": 100}`))
			assert.NoError(t, err)
		})
	}
}

func TestPaginationDefaults(t *testing.T) {
	courses, err := schema.Decode[ListCoursesInput](ListCourses, nil)
	require.NoError(t, err)
	assert.Equal(t, ListCoursesInput{PageInput: PageInput{Limit: 15}}, courses)

	files, err := schema.Decode[ListMediaInput](ListFiles, json.RawMessage(`{"filename": "intro"}`))
	require.NoError(t, err)
	assert.Equal(t, ListMediaInput{PageInput: PageInput{Limit: 100}, Filename: "intro"}, files)
}

func TestIdentifierContracts(t *testing.T) {
	for _, c := range []*schema.Contract{CourseID, ModuleID, LessonID, SubmoduleID, FileID, FolderID} {
		t.Run(c.Name(), func(t *testing.T) {
			for _, bad := range []string{"0", "-3", "1.5", `"7"`} {
				_, err := c.Validate(json.RawMessage(`{"` + c.Name() + `": ` + bad + `}`))
				assert.Error(t, err, "value %s", bad)
			}
			_, err := c.Validate(json.RawMessage(`{}`))
			assert.Error(t, err)
			_, err = c.Validate(json.RawMessage(`{"` + c.Name() + `": 7}`))
			assert.NoError(t, err)
		})
	}
}

func TestPatchContractsAcceptEmptyAndRejectUnknown(t *testing.T) {
	patches := map[string]*schema.Contract{
		"course":    CoursePatch,
		"module":    ModulePatch,
		"lesson":    LessonPatch,
		"submodule": SubmodulePatch,
	}

	for name, c := range patches {
		t.Run(name, func(t *testing.T) {
			args, err := c.Validate(json.RawMessage(`{}`))
			require.NoError(t, err)
			assert.Empty(t, args, "a patch must not invent values")

			_, err = c.Validate(json.RawMessage(`{"colour": "blue"}`))
			assert.ErrorIs(t, err, schema.ErrInvalidInput)
		})
	}
}

func TestUpdateRequiresOrderCreateDoesNot(t *testing.T) {
	pairs := map[string][2]*schema.Contract{
		"course": {CourseCreate, CourseUpdate},
		"module": {ModuleCreate, ModuleUpdate},
	}

	for name, p := range pairs {
		t.Run(name, func(t *testing.T) {
			create, update := p[0], p[1]

			co, ok := create.Field("order")
			require.True(t, ok)
			assert.False(t, co.Required)

			uo, ok := update.Field("order")
			require.True(t, ok)
			assert.True(t, uo.Required)

			assert.Len(t, update.Fields(), len(create.Fields()))
		})
	}

	body := `{"title": "Go", "is_active": true, "is_secret": false, "is_archived": false,
		"is_displayed_in_app": true, "is_offline_downloadable": false}`
	_, err := CourseCreate.Validate(json.RawMessage(body))
	require.NoError(t, err)
	_, err = CourseUpdate.Validate(json.RawMessage(body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order")
}

func TestCourseCreateEnumsAndBounds(t *testing.T) {
	base := `"title": "Go", "is_active": true, "is_secret": false, "is_archived": false, "is_displayed_in_app": true, "is_offline_downloadable": false`

	testCases := []struct {
		name    string
		extra   string
		wantErr bool
	}{
		{name: "valid view type", extra: `, "module_view_type": "grid"`},
		{name: "unknown view type", extra: `, "module_view_type": "carousel"`, wantErr: true},
		{name: "unknown payment type", extra: `, "payment_type": "donation"`, wantErr: true},
		{name: "days access", extra: `, "course_access_type": "number_of_days_access", "number_days_access": 30`},
		{name: "negative days", extra: `, "number_days_access": -1`, wantErr: true},
		{name: "image id is a string", extra: `, "image_id": 12`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateCourse.Validate(json.RawMessage(`{` + base + tc.extra + `}`))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	_, err := CreateCourse.Validate(json.RawMessage(`{"title": "", "is_active": true, "is_secret": false, "is_archived": false, "is_displayed_in_app": true, "is_offline_downloadable": false}`))
	assert.Error(t, err)
}

func TestCountCoursesDefaultsArchived(t *testing.T) {
	in, err := schema.Decode[CountCoursesInput](CountCourses, json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.False(t, in.Archived)

	args, err := CountCourses.Validate(nil)
	require.NoError(t, err)
	assert.Equal(t, false, args["archived"])

	_, err = CountCourses.Validate(json.RawMessage(`{"limit": 10}`))
	assert.Error(t, err)
}

func TestModuleCreateDefaults(t *testing.T) {
	in, err := schema.Decode[CreateModuleInput](CreateModule, json.RawMessage(`{"course_id": 3, "title": "Intro"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(3), in.CourseID)
	require.NotNil(t, in.Mandatory)
	assert.False(t, *in.Mandatory)
	require.NotNil(t, in.IsPublished)
	require.NotNil(t, in.IsActive)
	assert.Nil(t, in.Order)

	body, err := json.Marshal(in.Module)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "Intro", "mandatory": false, "is_published": false, "is_active": false}`, string(body))
}

func TestLessonCreateContentBlocks(t *testing.T) {
	raw := `{
		"module_id": 9,
		"title": "Welcome",
		"lesson_type": "lesson",
		"is_active": true,
		"is_published": true,
		"mandatory": false,
		"content_blocks": [
			{"block_type": "video", "order": 1, "content": {"link": "https://youtu.be/x"}},
			{"block_type": "text", "order": 2, "is_expanded": false, "content": {"btn_size": "large"}}
		],
		"attached_files": [{"order": 1, "file_id": 44}]
	}`

	in, err := schema.Decode[CreateLessonInput](CreateLesson, json.RawMessage(raw))
	require.NoError(t, err)
	require.Len(t, in.ContentBlocks, 2)
	require.NotNil(t, in.ContentBlocks[0].IsExpanded)
	assert.True(t, *in.ContentBlocks[0].IsExpanded)
	assert.False(t, *in.ContentBlocks[1].IsExpanded)
	require.NotNil(t, in.ContentBlocks[1].Content.BtnSize)
	assert.Equal(t, "large", *in.ContentBlocks[1].Content.BtnSize, "button fields are accepted on any block type")
	assert.Equal(t, []Attachment{{Order: 1, FileID: 44}}, in.AttachedFiles)

	bad := []string{
		`{"module_id": 9, "title": "W", "lesson_type": "webinar", "is_active": true, "is_published": true, "mandatory": false}`,
		`{"module_id": 9, "title": "W", "lesson_type": "lesson", "is_active": true, "is_published": true, "mandatory": false, "content_blocks": [{"block_type": "slide", "order": 1}]}`,
		`{"module_id": 9, "title": "W", "lesson_type": "lesson", "is_active": true, "is_published": true, "mandatory": false, "content_blocks": [{"block_type": "btn", "order": 1, "content": {"btn_target": "_top"}}]}`,
		`{"module_id": 9, "title": "W", "lesson_type": "lesson", "is_active": true, "is_published": true, "mandatory": false, "attached_files": [{"order": 1}]}`,
	}
	for _, b := range bad {
		_, err := CreateLesson.Validate(json.RawMessage(b))
		assert.Error(t, err, b)
	}
}

func TestLessonPatchExcludesBlocks(t *testing.T) {
	_, ok := LessonPatch.Field("content_blocks")
	assert.False(t, ok)
	_, err := UpdateLesson.Validate(json.RawMessage(`{"lesson_id": 1, "content_blocks": []}`))
	assert.Error(t, err)

	in, err := schema.Decode[LessonChangeInput](UpdateLesson, json.RawMessage(`{"lesson_id": 1, "is_published": false}`))
	require.NoError(t, err)
	body, err := json.Marshal(in.Lesson)
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_published": false}`, string(body))
}

func TestSubmoduleCreateRequiresOrder(t *testing.T) {
	_, err := CreateSubmodule.Validate(json.RawMessage(`{"module_id": 1, "title": "Part A"}`))
	require.Error(t, err)

	in, err := schema.Decode[CreateSubmoduleInput](CreateSubmodule, json.RawMessage(`{"module_id": 1, "title": "Part A", "order": 0}`))
	require.NoError(t, err)
	assert.Equal(t, Submodule{Title: ptr("Part A"), Order: ptr(int64(0)), IsPublished: ptr(false)}, in.Submodule)
}

func TestMediaContracts(t *testing.T) {
	_, err := ListFiles.Validate(json.RawMessage(`{"parent_folder_id": 0}`))
	assert.Error(t, err, "parent folder must be positive")

	_, err = ListAllFolders.Validate(json.RawMessage(`{"filename": "x"}`))
	assert.Error(t, err)

	_, err = CountFiles.Validate(json.RawMessage(`{}`))
	assert.NoError(t, err)

	in, err := schema.Decode[FileChangeInput](UpdateFile, json.RawMessage(`{"file_id": 5, "name": "intro.mp4"}`))
	require.NoError(t, err)
	body, err := json.Marshal(in.Entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "intro.mp4"}`, string(body))

	_, err = FolderCreate.Validate(json.RawMessage(`{"name": ""}`))
	assert.Error(t, err)
	_, err = UpdateFolder.Validate(json.RawMessage(`{"folder_id": 2}`))
	assert.Error(t, err)
}

func TestIpnOrderPaymentRoundTrip(t *testing.T) {
	want := IpnOrderPaymentInput{
		MarketplaceBuyer: MarketplaceBuyerInput{
			Email:       "jane@example.com",
			FirstName:   ptr("Jane"),
			LastName:    ptr("Doe"),
			PhoneNumber: ptr("+49 30 1234567"),
			Address: &AddressInput{
				StreetAndNumber: ptr("Hauptstr. 1"),
				City:            ptr("Berlin"),
				PostalCode:      ptr("10115"),
				Country:         ptr("DE"),
			},
		},
		CourseIDs:   []int64{11, 12},
		ID:          ptr("order-77"),
		Transaction: &TransactionInput{Amount: 49.99, ID: ptr("tx-77")},
	}

	raw, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := schema.Decode[IpnOrderPaymentInput](IpnOrderPayment, raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExplicitEmptyStringsAreSent(t *testing.T) {
	lesson, err := schema.Decode[CreateLessonInput](CreateLesson, json.RawMessage(`{
		"module_id": 9, "title": "W", "lesson_type": "lesson",
		"is_active": true, "is_published": true, "mandatory": false,
		"content_blocks": [{"block_type": "html", "order": 1, "content": {"payload": ""}}]
	}`))
	require.NoError(t, err)
	body, err := json.Marshal(lesson.ContentBlocks[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"block_type": "html", "order": 1, "is_expanded": true, "content": {"payload": ""}}`, string(body))

	order, err := schema.Decode[IpnOrderPaymentInput](IpnOrderPayment, json.RawMessage(`{
		"marketplace_buyer": {"email": "a@b.co", "last_name": "", "address": {"city": ""}},
		"course_ids": [1]
	}`))
	require.NoError(t, err)
	body, err = json.Marshal(order.MarketplaceBuyer)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email": "a@b.co", "last_name": "", "address": {"city": ""}}`, string(body))
}

func TestIpnOrderPaymentRejects(t *testing.T) {
	testCases := map[string]string{
		"missing buyer":    `{"course_ids": [1]}`,
		"bad email":        `{"marketplace_buyer": {"email": "nope"}, "course_ids": [1]}`,
		"empty course ids": `{"marketplace_buyer": {"email": "a@b.co"}, "course_ids": []}`,
		"zero course id":   `{"marketplace_buyer": {"email": "a@b.co"}, "course_ids": [0]}`,
		"zero amount":      `{"marketplace_buyer": {"email": "a@b.co"}, "course_ids": [1], "transaction": {"amount": 0}}`,
		"unknown address":  `{"marketplace_buyer": {"email": "a@b.co", "address": {"state": "BE"}}, "course_ids": [1]}`,
	}

	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := IpnOrderPayment.Validate(json.RawMessage(raw))
			assert.ErrorIs(t, err, schema.ErrInvalidInput)
		})
	}
}

func TestUploadFileContract(t *testing.T) {
	in, err := schema.Decode[UploadFileInput](UploadFile, json.RawMessage(`{"path": "intro.pdf", "parent_folder_id": 0}`))
	require.NoError(t, err)
	assert.Equal(t, UploadFileInput{Path: "intro.pdf"}, in)

	_, err = UploadFile.Validate(json.RawMessage(`{"parent_folder_id": -1}`))
	assert.Error(t, err)
}
