package cache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobscout/pkg/models"
)

func TestResultKey_NormalizesCompanyAndTitle(t *testing.T) {
	t.Parallel()

	key := resultKey(models.JobQueryParams{
		JobTitle:    "  Senior   Backend Engineer ",
		CompanyName: "Acme Corp",
	})

	require.Equal(t, "locate:result:acme-corp:senior-backend-engineer", key)
}

func TestResultKey_FallsBackToDomain(t *testing.T) {
	t.Parallel()

	key := resultKey(models.JobQueryParams{
		JobTitle:      "Engineer",
		CompanyDomain: "acme.com",
	})

	require.Equal(t, "locate:result:acme.com:engineer", key)
}

func TestResultKey_CaseInsensitive(t *testing.T) {
	t.Parallel()

	a := resultKey(models.JobQueryParams{JobTitle: "Backend Engineer", CompanyName: "ACME"})
	b := resultKey(models.JobQueryParams{JobTitle: "backend engineer", CompanyName: "acme"})

	require.Equal(t, a, b)
}
