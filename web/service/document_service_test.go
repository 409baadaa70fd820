package service

import (
	"testing"

	"portfolio/web/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundtrip(t *testing.T) {
	setup(t)
	user := createTestUser(t, "alice")

	documentService := DocumentService{}
	document, errs, err := documentService.CreateDocument(user.Id, entity.DocumentForm{
		Title: "Annual report",
	}, "/images/documents/cover.png", "/documents/report.pdf")
	require.NoError(t, err)
	require.Nil(t, errs)

	got, err := documentService.GetDocument(document.Id)
	require.NoError(t, err)
	assert.Equal(t, "Annual report", got.Title)
	assert.Equal(t, "/documents/report.pdf", got.DocumentUrl)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice", got.User.Username)
}

func TestSearchDocumentsByOwner(t *testing.T) {
	setup(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	documentService := DocumentService{}
	_, _, err := documentService.CreateDocument(alice.Id, entity.DocumentForm{Title: "Invoice"}, "", "/documents/a.pdf")
	require.NoError(t, err)
	_, _, err = documentService.CreateDocument(bob.Id, entity.DocumentForm{Title: "Contract"}, "", "/documents/b.pdf")
	require.NoError(t, err)

	results, err := documentService.SearchDocuments("bob")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Contract", results[0].Title)
}
