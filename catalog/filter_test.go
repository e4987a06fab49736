package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"medivance-backend/models"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Augmocil-625", Category: models.CategoryAntibiotics, Type: models.TypeTablets,
			Description: "Amoxicillin and clavulanate combination", Status: models.StatusActive},
		{ID: 2, Name: "Azithromycin 250mg", Category: models.CategoryAntibiotics, Type: models.TypeTablets,
			Description: "Macrolide antibiotic, alternative to Augmocil", Status: models.StatusActive},
		{ID: 21, Name: "Ibuprofen 400mg", Category: models.CategoryAnalgesics, Type: models.TypeTablets,
			Description: "NSAID for pain and inflammation relief", Status: models.StatusInactive},
		{ID: 41, Name: "Vitamin D3 1000 IU", Category: models.CategorySupplements, Type: models.TypeTablets,
			Description: "Essential vitamin for bone health and immunity", Status: models.StatusActive},
		{ID: 42, Name: "Omega-3 Fish Oil 1000mg", Category: models.CategorySupplements, Type: models.TypeCapsules,
			Description: "EPA and DHA for heart and brain health", Status: models.StatusActive},
		{ID: 101, Name: "Augmocil DS Suspension", Category: models.CategorySyrups, Type: models.TypeSuspension,
			Description: "Pediatric antibiotic suspension", Status: models.StatusActive},
		{ID: 200, Name: "Herbal Drops", Category: models.CategorySupplements, Type: "Drops",
			Description: "Unlisted dosage form", Status: models.StatusActive},
	}
}

func productIDs(products []models.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Run("ConjunctionOfTextCategoryAndType", func(t *testing.T) {
		got := Filter(sampleCatalog(), Criteria{Query: "augmo", Category: models.CategoryAntibiotics, Type: models.FilterAll})
		require.Equal(t, []int64{1, 2}, productIDs(got))
	})

	t.Run("ConjunctionHoldsForEveryCombination", func(t *testing.T) {
		products := sampleCatalog()
		queries := []string{"", "augmo", "VITAMIN", "health", "nothing-matches"}
		categories := []string{models.FilterAll, models.CategoryAntibiotics, models.CategorySupplements, "unknown"}
		types := []string{models.FilterAll, models.TypeTablets, models.TypeCapsules, "Drops"}

		for _, q := range queries {
			for _, c := range categories {
				for _, ty := range types {
					crit := Criteria{Query: q, Category: c, Type: ty}
					got := Filter(products, crit)

					var want []int64
					for _, p := range products {
						if MatchesText(p, q) && MatchesCategory(p, c) && MatchesType(p, ty) {
							want = append(want, p.ID)
						}
					}
					if want == nil {
						want = []int64{}
					}
					require.Equal(t, want, productIDs(got), "criteria %+v", crit)
				}
			}
		}
	})

	t.Run("AllSentinelBypassesCategoryAndType", func(t *testing.T) {
		for _, p := range sampleCatalog() {
			require.True(t, MatchesCategory(p, models.FilterAll))
			require.True(t, MatchesType(p, models.FilterAll))
			require.True(t, MatchesCategory(p, ""))
		}
		got := Filter(sampleCatalog(), Criteria{Category: models.FilterAll, Type: models.FilterAll})
		require.Len(t, got, len(sampleCatalog()))
	})

	t.Run("TextMatchesNameOrDescriptionCaseInsensitive", func(t *testing.T) {
		p := models.Product{Name: "Amlodipine 5mg", Description: "Calcium channel blocker"}
		require.True(t, MatchesText(p, "AMLO"))
		require.True(t, MatchesText(p, "channel"))
		require.True(t, MatchesText(p, ""))
		require.False(t, MatchesText(p, "insulin"))
	})

	t.Run("PreservesInputOrder", func(t *testing.T) {
		got := Filter(sampleCatalog(), Criteria{Category: models.CategorySupplements})
		require.Equal(t, []int64{41, 42, 200}, productIDs(got))

		reversed := sampleCatalog()
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		got = Filter(reversed, Criteria{Category: models.CategorySupplements})
		require.Equal(t, []int64{200, 42, 41}, productIDs(got))
	})

	t.Run("DoesNotMutateInputAndIsIdempotent", func(t *testing.T) {
		products := sampleCatalog()
		before := sampleCatalog()
		crit := Criteria{Query: "a", Type: models.TypeTablets}

		first := Filter(products, crit)
		second := Filter(products, crit)

		if diff := cmp.Diff(before, products); diff != "" {
			t.Fatalf("input mutated (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("filter not idempotent (-first +second):\n%s", diff)
		}
	})

	t.Run("EmptyResultIsEmptySliceNotNil", func(t *testing.T) {
		got := Filter(sampleCatalog(), Criteria{Query: "zzz"})
		require.NotNil(t, got)
		require.Empty(t, got)

		got = Filter(nil, Criteria{})
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("UnknownDosageFormIsSearchable", func(t *testing.T) {
		got := Filter(sampleCatalog(), Criteria{Type: "Drops"})
		require.Equal(t, []int64{200}, productIDs(got))
	})

	t.Run("StatusOnlyFiltersWhenSet", func(t *testing.T) {
		require.Len(t, Filter(sampleCatalog(), Criteria{}), 7)
		got := Filter(sampleCatalog(), Criteria{Status: models.StatusInactive})
		require.Equal(t, []int64{21}, productIDs(got))
	})

	t.Run("Scenario_CategoryOnly", func(t *testing.T) {
		products := []models.Product{
			{ID: 1, Name: "Augmocil-625", Category: models.CategoryAntibiotics, Type: models.TypeTablets},
			{ID: 2, Name: "Ibuprofen 400mg", Category: models.CategoryAnalgesics, Type: models.TypeTablets},
		}
		got := Filter(products, Criteria{Query: "", Category: models.CategoryAntibiotics, Type: models.FilterAll})
		require.Len(t, got, 1)
		require.Equal(t, "Augmocil-625", got[0].Name)
	})

	t.Run("Scenario_VitaminSearch", func(t *testing.T) {
		products := []models.Product{
			{ID: 41, Name: "Vitamin D3 1000 IU", Category: models.CategorySupplements},
			{ID: 1, Name: "Augmocil-625", Category: models.CategoryAntibiotics},
		}
		got := Filter(products, Criteria{Query: "vitamin", Category: models.FilterAll, Type: models.FilterAll})
		require.Len(t, got, 1)
		require.Equal(t, "Vitamin D3 1000 IU", got[0].Name)
	})
}
