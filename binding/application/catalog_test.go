package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"query-binding/binding/domain"
)

func TestNewCatalog_BuildsSealedRegistry(t *testing.T) {
	c, err := NewCatalog(domain.Declarations{
		Providers: []domain.ProviderSpec{filterProvider("filter_a", "fieldA", "a", "valueA")},
		Endpoints: []domain.Endpoint{{Path: "/filters", Providers: []string{"filter_a"}}},
	})
	require.NoError(t, err)
	assert.True(t, c.Registry.Sealed())

	ep, ok := c.Endpoint("/filters")
	require.True(t, ok)
	assert.Equal(t, []string{"filter_a"}, ep.Providers)

	_, ok = c.Endpoint("/other")
	assert.False(t, ok)
}

func TestNewCatalog_RefusesInvalidDeclarations(t *testing.T) {
	fa := filterProvider("filter_a", "fieldA", "a", "valueA")

	_, err := NewCatalog(domain.Declarations{Providers: []domain.ProviderSpec{fa, fa}})
	var dup *domain.DuplicateProviderError
	require.ErrorAs(t, err, &dup)

	_, err = NewCatalog(domain.Declarations{
		Providers: []domain.ProviderSpec{fa},
		Endpoints: []domain.Endpoint{{Path: "/", Providers: []string{"filter_b"}}},
	})
	var unknown *domain.UnknownProviderError
	require.ErrorAs(t, err, &unknown)

	invalid := []domain.Endpoint{
		{Path: "filters", Providers: []string{"filter_a"}},
		{Path: "/empty"},
		{Path: "/single", Providers: []string{"filter_a", "filter_a"}, Single: true},
		{Path: "/items/{id", Providers: []string{"filter_a"}},
		{Path: "/x/{id}/{id}", Providers: []string{"filter_a"}},
		{Path: "/filters/{id}", Providers: []string{"filter_a"}},
		{Path: "/filters/", Providers: []string{"filter_a"}},
		{Path: "/with space", Providers: []string{"filter_a"}},
		{Path: "/tab\tpath", Providers: []string{"filter_a"}},
	}
	for _, ep := range invalid {
		_, err = NewCatalog(domain.Declarations{Providers: []domain.ProviderSpec{fa}, Endpoints: []domain.Endpoint{ep}})
		var inv *domain.InvalidDeclarationError
		assert.ErrorAs(t, err, &inv, ep.Path)
	}

	_, err = NewCatalog(domain.Declarations{
		Providers: []domain.ProviderSpec{fa},
		Endpoints: []domain.Endpoint{{Path: "/x", Providers: []string{"filter_a"}}, {Path: "/x", Providers: []string{"filter_a"}}},
	})
	var inv *domain.InvalidDeclarationError
	require.ErrorAs(t, err, &inv)
}
