package pdfexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	jobapimodels "site-backend/models/api/job"
)

func TestGenerateJobDescription(t *testing.T) {
	job := jobapimodels.JobView{
		ID:           "j1",
		Title:        "Backend Engineer",
		Department:   "Engineering",
		Location:     "Berlin",
		IsRemote:     true,
		Description:  "<p>Build <b>services</b></p>",
		Requirements: "<ul><li>Go</li><li>Postgres</li></ul>",
	}

	t.Run(`core font fallback check`, func(t *testing.T) {
		body, err := GenerateJobDescription(job, "")
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	})

	t.Run(`missing font dir check`, func(t *testing.T) {
		body, err := GenerateJobDescription(job, "/nonexistent/fonts")
		require.Nil(t, err)
		require.NotEmpty(t, body)
	})
}

func TestSummaryLines(t *testing.T) {
	lines := summaryLines(jobapimodels.JobView{Location: "", IsRemote: true, Department: "Sales"})
	require.Equal(t, []string{"Отдел: Sales", "Локация: (удалённо)"}, lines)
	require.Equal(t, "a<br>- b<br>", normalizeHTML("<p>a</p><ul><li>b</li></ul>"))
}
