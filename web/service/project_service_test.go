package service

import (
	"testing"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, username string) *model.User {
	t.Helper()
	userService := UserService{}
	user, errs, err := userService.Register(registerForm(username, username+"@example.com"))
	require.NoError(t, err)
	require.Nil(t, errs)
	return user
}

func TestCreateAndGetProject(t *testing.T) {
	setup(t)
	user := createTestUser(t, "alice")

	projectService := ProjectService{}
	project, errs, err := projectService.CreateProject(user.Id, entity.ProjectForm{
		Title:       "Site relaunch",
		Description: "Full rebuild of the public site.",
	}, "/images/projects/cover.png")
	require.NoError(t, err)
	require.Nil(t, errs)

	got, err := projectService.GetProject(project.Id)
	require.NoError(t, err)
	assert.Equal(t, "Site relaunch", got.Title)
	assert.Equal(t, user.Id, got.UserId)
	assert.Equal(t, "/images/projects/cover.png", got.CoverImageUrl)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice", got.User.Username)
}

func TestProjectValidation(t *testing.T) {
	setup(t)
	user := createTestUser(t, "alice")

	projectService := ProjectService{}

	_, errs, err := projectService.CreateProject(user.Id, entity.ProjectForm{}, "")
	require.NoError(t, err)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "description")

	unknown := 42
	_, errs, err = projectService.CreateProject(user.Id, entity.ProjectForm{
		Title:             "Titled",
		Description:       "Described.",
		ProjectCategoryId: &unknown,
	}, "")
	require.NoError(t, err)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "projectCategoryId")
}

func TestZeroProjectCategoryMeansUncategorized(t *testing.T) {
	setup(t)
	user := createTestUser(t, "alice")

	categoryService := ProjectCategoryService{}
	category, _, err := categoryService.CreateCategory(entity.CategoryForm{CategoryDesc: "Web"})
	require.NoError(t, err)

	projectService := ProjectService{}

	// Posting the "None" option binds the category as a pointer to zero.
	none := 0
	project, errs, err := projectService.CreateProject(user.Id, entity.ProjectForm{
		Title:             "Side project",
		Description:       "No category picked.",
		ProjectCategoryId: &none,
	}, "")
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.Nil(t, project.ProjectCategoryId)

	// Editing an assigned project back to "None" clears the category.
	project, _, err = projectService.CreateProject(user.Id, entity.ProjectForm{
		Title:             "Categorized",
		Description:       "Starts out assigned.",
		ProjectCategoryId: &category.Id,
	}, "")
	require.NoError(t, err)

	zero := 0
	updated, errs, err := projectService.UpdateProject(project.Id, entity.ProjectForm{
		Title:             "Categorized",
		Description:       "Starts out assigned.",
		ProjectCategoryId: &zero,
	}, "")
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.Nil(t, updated.ProjectCategoryId)
}

func TestUpdateProjectConcurrentlyDeleted(t *testing.T) {
	setup(t)
	user := createTestUser(t, "alice")

	projectService := ProjectService{}
	project, _, err := projectService.CreateProject(user.Id, entity.ProjectForm{
		Title:       "Site relaunch",
		Description: "Full rebuild of the public site.",
	}, "")
	require.NoError(t, err)

	require.NoError(t, projectService.DeleteProject(project.Id))

	_, _, err = projectService.UpdateProject(project.Id, entity.ProjectForm{
		Title:       "Renamed",
		Description: "Still described.",
	}, "")
	assert.True(t, database.IsNotFound(err))
}

func TestDeleteCategoryDetachesProjects(t *testing.T) {
	setup(t)
	user := createTestUser(t, "alice")

	categoryService := ProjectCategoryService{}
	category, errs, err := categoryService.CreateCategory(entity.CategoryForm{CategoryDesc: "Web"})
	require.NoError(t, err)
	require.Nil(t, errs)

	projectService := ProjectService{}
	project, _, err := projectService.CreateProject(user.Id, entity.ProjectForm{
		Title:             "Site relaunch",
		Description:       "Full rebuild of the public site.",
		ProjectCategoryId: &category.Id,
	}, "")
	require.NoError(t, err)

	require.NoError(t, categoryService.DeleteCategory(category.Id))

	got, err := projectService.GetProject(project.Id)
	require.NoError(t, err)
	assert.Nil(t, got.ProjectCategoryId)
	assert.Nil(t, got.ProjectCategory)
}

func TestSearchProjects(t *testing.T) {
	setup(t)
	user := createTestUser(t, "alice")

	categoryService := ProjectCategoryService{}
	category, _, err := categoryService.CreateCategory(entity.CategoryForm{CategoryDesc: "Embedded"})
	require.NoError(t, err)

	projectService := ProjectService{}
	_, _, err = projectService.CreateProject(user.Id, entity.ProjectForm{
		Title:       "Weather station",
		Description: "Sensor board with a web dashboard.",
	}, "")
	require.NoError(t, err)
	_, _, err = projectService.CreateProject(user.Id, entity.ProjectForm{
		Title:             "Firmware updater",
		Description:       "OTA delivery pipeline.",
		ProjectCategoryId: &category.Id,
	}, "")
	require.NoError(t, err)

	// Case-insensitive title match.
	results, err := projectService.SearchProjects("WEATHER")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Weather station", results[0].Title)

	// Category description match.
	results, err = projectService.SearchProjects("embedded")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Firmware updater", results[0].Title)

	// Owner username match returns both.
	results, err = projectService.SearchProjects("alice")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Blank term returns everything.
	results, err = projectService.SearchProjects("  ")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
