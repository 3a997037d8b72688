package repository

import (
	"testing"

	domainRepo "github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Referencing table -> referenced table, per the entity association tags.
var collectionParents = map[string][]string{
	domainRepo.CollectionIngredientStocks: {domainRepo.CollectionIngredients},
	domainRepo.CollectionPurchases:        {domainRepo.CollectionIngredients},
	domainRepo.CollectionFormulaLines:     {domainRepo.CollectionFormulas, domainRepo.CollectionIngredients},
	domainRepo.CollectionFeedProductions:  {domainRepo.CollectionFormulas},
	domainRepo.CollectionFeedConsumptions: {domainRepo.CollectionSheds},
	domainRepo.CollectionMortalities:      {domainRepo.CollectionSheds},
	domainRepo.CollectionHusbandry:        {domainRepo.CollectionSheds},
	domainRepo.CollectionEggProductions:   {domainRepo.CollectionSheds},
	domainRepo.CollectionExpenses:         {domainRepo.CollectionExpenseCategories},
}

func collectionIndex(t *testing.T) map[string]int {
	t.Helper()
	index := make(map[string]int, len(allCollections))
	for i, name := range allCollections {
		index[name] = i
	}
	return index
}

// Inserts walk allCollections forward, so every parent must come before the
// collections that reference it; deletes walk it backward and get the
// child-first order for free.
func TestCollectionOrderRespectsForeignKeys(t *testing.T) {
	index := collectionIndex(t)

	for child, parents := range collectionParents {
		childIdx, ok := index[child]
		require.True(t, ok, "collection %s missing from allCollections", child)
		for _, parent := range parents {
			parentIdx, ok := index[parent]
			require.True(t, ok, "collection %s missing from allCollections", parent)
			assert.Less(t, parentIdx, childIdx,
				"%s must be ordered before %s", parent, child)
		}
	}
}

func TestCollectionOrderIsExhaustive(t *testing.T) {
	index := collectionIndex(t)
	assert.Len(t, index, len(allCollections), "duplicate collection name")

	for _, name := range allCollections {
		assert.NotNil(t, collectionModel(name), "no model mapped for %s", name)
	}
}
