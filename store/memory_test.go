package store

import (
	"context"
	"strings"
	"testing"

	"krishi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySeedData(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	items, err := m.GetMarketplaceItems(ctx, "")
	require.NoError(t, err)
	assert.Len(t, items, 4)
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Name)
	}

	schemes, err := m.GetGovernmentSchemes(ctx, false)
	require.NoError(t, err)
	assert.Len(t, schemes, 3)

	prices, err := m.GetMarketPrices(ctx)
	require.NoError(t, err)
	assert.Len(t, prices, 3)

	conns, err := m.GetBusinessConnections(ctx, "")
	require.NoError(t, err)
	assert.Len(t, conns, 2)
}

func TestMemoryMarketplaceCategoryFilter(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	all, err := m.GetMarketplaceItems(ctx, "")
	require.NoError(t, err)

	filtered, err := m.GetMarketplaceItems(ctx, "machinery")
	require.NoError(t, err)
	require.NotEmpty(t, filtered)
	assert.Less(t, len(filtered), len(all))
	for _, item := range filtered {
		assert.Equal(t, "machinery", item.Category)
	}

	none, err := m.GetMarketplaceItems(ctx, "no-such-category")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryActiveSchemesOnly(t *testing.T) {
	m := NewMemory()

	schemes, err := m.GetGovernmentSchemes(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, schemes, 2)
	for _, s := range schemes {
		assert.Equal(t, "active", s.Status)
	}
}

func TestMemoryConnectionCropSubstring(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, query := range []string{"tom", "TOM", "Tom", "toma"} {
		conns, err := m.GetBusinessConnections(ctx, query)
		require.NoError(t, err)
		require.Len(t, conns, 1, "query %q", query)
		assert.Equal(t, "Tomatoes", conns[0].BuyingCrop)
	}

	conns, err := m.GetBusinessConnections(ctx, "paddy")
	require.NoError(t, err)
	assert.Empty(t, conns)
}

func TestMemoryDiseaseReportsPerUser(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	report, err := m.CreateCropDiseaseReport(ctx, models.CropDiseaseReport{
		UserID:            "farmer-1",
		ImagePath:         "uploads/diseases/a.jpg",
		DiseaseName:       "Leaf Rust",
		Confidence:        72,
		OrganicSolutions:  []string{"neem oil"},
		ChemicalSolutions: []string{"mancozeb"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.False(t, report.CreatedAt.IsZero())

	mine, err := m.GetCropDiseaseReportsByUser(ctx, "farmer-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, report.ID, mine[0].ID)

	other, err := m.GetCropDiseaseReportsByUser(ctx, "farmer-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryChatMessagesPerUser(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	msg, err := m.CreateChatMessage(ctx, models.ChatMessage{
		UserID:   "farmer-1",
		Message:  "When should I sow wheat?",
		Response: "Sow in early November.",
	})
	require.NoError(t, err)
	assert.Equal(t, "en", msg.Language)

	mine, err := m.GetChatMessagesByUser(ctx, "farmer-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	other, err := m.GetChatMessagesByUser(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryUpdateMarketPriceIsAdditive(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	before, err := m.GetMarketPrices(ctx)
	require.NoError(t, err)

	updated, err := m.UpdateMarketPrice(ctx, models.MarketPrice{
		CropName:        "Wheat",
		PricePerQuintal: 2250,
		ChangePercent:   4.7,
		Market:          "Pune Mandi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, updated.ID)

	after, err := m.GetMarketPrices(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	// the older Wheat quote is still there
	var wheatRows int
	for _, p := range after {
		if strings.EqualFold(p.CropName, "Wheat") {
			wheatRows++
		}
	}
	assert.Equal(t, 2, wheatRows)
}

func TestMemoryUsers(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	user, err := m.CreateUser(ctx, "ravi", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	byID, err := m.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ravi", byID.Username)

	byName, err := m.GetUserByUsername(ctx, "ravi")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = m.CreateUser(ctx, "ravi", "other")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	_, err = m.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
