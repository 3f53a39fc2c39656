package heuristics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobscout/pkg/models"
)

const postingHTML = `<html>
<head><title>Acme Careers</title><script>var x = 1;</script></head>
<body>
<nav><a href="/">Home</a></nav>
<h1>Senior Software Engineer</h1>
<p>Location: Berlin, Germany</p>
<p>Posted on: January 12, 2026</p>
<p>Salary: €70,000-€90,000</p>
<p>This is a Full-time position with Remote work available.
We are looking for someone with 5+ years of experience building backend systems.
You will join a growing engineering organization that values ownership.</p>
<p>Requirements: 5+ years of Go experience - Strong distributed systems background - Excellent communication skills</p>
<footer>Cookie notice</footer>
</body>
</html>`

func postingParams() models.JobQueryParams {
	return models.JobQueryParams{
		JobTitle:    "Software Engineer",
		CompanyName: "Acme",
	}
}

func TestExtractJobRecord_NormalizedFields(t *testing.T) {
	t.Parallel()

	record, err := ExtractJobRecord(postingHTML, postingParams(), DefaultTables())
	require.NoError(t, err)

	require.Equal(t, "Senior Software Engineer", record.Title)
	require.Equal(t, "Acme", record.Company)
	require.Equal(t, models.EmploymentFullTime, record.EmploymentType)
	require.Equal(t, models.RemoteOptionRemote, record.RemoteOption)
	require.Equal(t, models.ExperienceSenior, record.ExperienceLevel)
	require.Contains(t, record.Location, "Berlin")
	require.Contains(t, record.SalaryRange, "70,000")
	require.Contains(t, record.PostedDate, "January 12")
	require.NotEmpty(t, record.Description)
}

func TestExtractJobRecord_LocationLengthGuard(t *testing.T) {
	t.Parallel()

	// The first location pattern captures an implausibly long phrase;
	// extraction must fall through to a later pattern with a sane match
	// instead of returning the junk capture.
	html := `<html><body>
<h1>Senior Software Engineer</h1>
<p>Location: wherever our distributed teammates choose to open their laptops this quarter</p>
<p>Office: Munich</p>
</body></html>`

	record, err := ExtractJobRecord(html, postingParams(), DefaultTables())
	require.NoError(t, err)

	require.Equal(t, "Munich", record.Location)
}

func TestExtractJobRecord_RequirementsSplitOnBullets(t *testing.T) {
	t.Parallel()

	record, err := ExtractJobRecord(postingHTML, postingParams(), DefaultTables())
	require.NoError(t, err)

	require.Contains(t, record.Requirements, "Strong distributed systems background")
	require.Contains(t, record.Requirements, "Excellent communication skills")
}

func TestExtractJobRecord_MissingFieldsStayUnknown(t *testing.T) {
	t.Parallel()

	html := `<html><body><h1>Senior Software Engineer</h1><p>Apply today.</p></body></html>`

	record, err := ExtractJobRecord(html, postingParams(), DefaultTables())
	require.NoError(t, err)

	require.Equal(t, models.ValueUnknown, record.Location)
	require.Equal(t, models.ValueUnknown, record.EmploymentType)
	require.Equal(t, models.ValueUnknown, record.SalaryRange)
	require.NotNil(t, record.Requirements)
	require.Empty(t, record.Requirements)
	require.NotNil(t, record.Benefits)
	require.Empty(t, record.Benefits)
}

func TestExtractJobRecord_TitleFallsBackToQuery(t *testing.T) {
	t.Parallel()

	html := `<html><body><p>Welcome to our page.</p></body></html>`

	record, err := ExtractJobRecord(html, postingParams(), DefaultTables())
	require.NoError(t, err)
	require.Equal(t, "Software Engineer", record.Title)
}

func TestExtractJobRecord_CompanyFallsBackToDomain(t *testing.T) {
	t.Parallel()

	params := models.JobQueryParams{JobTitle: "Software Engineer", CompanyDomain: "acme.com"}

	record, err := ExtractJobRecord("<html><body></body></html>", params, DefaultTables())
	require.NoError(t, err)
	require.Equal(t, "acme.com", record.Company)
}

func TestExtractJobRecord_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := ExtractJobRecord(postingHTML, postingParams(), DefaultTables())
	require.NoError(t, err)
	second, err := ExtractJobRecord(postingHTML, postingParams(), DefaultTables())
	require.NoError(t, err)

	require.Equal(t, first, second)
}
