package service

import (
	"testing"
	"time"

	"portfolio/web/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNewsParsesDate(t *testing.T) {
	setup(t)
	user := createTestUser(t, "alice")

	newsService := NewsService{}
	news, errs, err := newsService.CreateNews(user.Id, entity.NewsForm{
		Title:       "Launched",
		Description: "The new site is live.",
		Date:        "2026-01-15",
	}, "")
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), news.Date)

	_, errs, err = newsService.CreateNews(user.Id, entity.NewsForm{
		Title:       "Bad date",
		Description: "Date in the wrong format.",
		Date:        "15.01.2026",
	}, "")
	require.NoError(t, err)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "date")
}

func TestGetNewsOrdersByDateDesc(t *testing.T) {
	setup(t)
	user := createTestUser(t, "alice")

	newsService := NewsService{}
	for _, date := range []string{"2026-01-15", "2026-03-02", "2025-12-01"} {
		_, errs, err := newsService.CreateNews(user.Id, entity.NewsForm{
			Title:       "Entry " + date,
			Description: "Posted on " + date,
			Date:        date,
		}, "")
		require.NoError(t, err)
		require.Nil(t, errs)
	}

	news, err := newsService.GetNews()
	require.NoError(t, err)
	require.Len(t, news, 3)
	assert.Equal(t, "Entry 2026-03-02", news[0].Title)
	assert.Equal(t, "Entry 2026-01-15", news[1].Title)
	assert.Equal(t, "Entry 2025-12-01", news[2].Title)
}

func TestSearchNews(t *testing.T) {
	setup(t)
	user := createTestUser(t, "alice")

	newsService := NewsService{}
	_, _, err := newsService.CreateNews(user.Id, entity.NewsForm{
		Title:       "Conference talk",
		Description: "Speaking about observability.",
		Date:        "2026-02-10",
	}, "")
	require.NoError(t, err)
	_, _, err = newsService.CreateNews(user.Id, entity.NewsForm{
		Title:       "New office",
		Description: "We moved downtown.",
		Date:        "2026-02-11",
	}, "")
	require.NoError(t, err)

	results, err := newsService.SearchNews("OBSERVABILITY")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Conference talk", results[0].Title)

	results, err = newsService.SearchNews("")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
