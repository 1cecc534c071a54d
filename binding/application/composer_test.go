package application

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"query-binding/binding/domain"
)

func TestComposer_EqualsIndependentResolution(t *testing.T) {
	reg := newTestRegistry(t,
		filterProvider("filter_a", "fieldA", "a", "valueA"),
		filterProvider("filter_b", "fieldB", "b", "valueB"),
		filterProvider("second_filter_a", "secondFieldA", "a", "secondValueA"),
	)
	c := Composer{Resolver: Resolver{Registry: reg}}
	q := mustQuery("fieldA=a&valueA=a&fieldB=b&valueB=b&secondFieldA=c&secondValueA=c")
	ids := []string{"second_filter_a", "filter_a", "filter_b"}

	for i := 0; i < 100; i++ {
		got, err := c.Compose(ids, q)
		require.NoError(t, err)

		var want []domain.Record
		for _, id := range ids {
			rec, err := c.Resolver.Resolve(id, q)
			require.NoError(t, err)
			want = append(want, rec)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("composition differs from independent resolution (-want +got):\n%s", diff)
		}
	}
}

func TestComposer_SameProviderTwice(t *testing.T) {
	reg := newTestRegistry(t, filterProvider("filter_a", "fieldA", "a", "valueA"))
	c := Composer{Resolver: Resolver{Registry: reg}}

	got, err := c.Compose([]string{"filter_a", "filter_a"}, mustQuery("valueA=v"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, got[0], got[1])
}

func TestComposer_CombinesErrorsAcrossProviders(t *testing.T) {
	required := func(id, key string) domain.ProviderSpec {
		return domain.ProviderSpec{ID: id, Params: []domain.ParameterSpec{{Name: "v", Query: key, Kind: domain.KindString, Required: true}}}
	}
	reg := newTestRegistry(t, required("a", "keyA"), required("b", "keyB"))
	c := Composer{Resolver: Resolver{Registry: reg}}

	recs, err := c.ComposeEndpoint(domain.Endpoint{Path: "/x", Providers: []string{"a", "b"}}, domain.Query{})
	assert.Nil(t, recs)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "keyA")
	assert.Contains(t, errs[1].Error(), "keyB")
}
