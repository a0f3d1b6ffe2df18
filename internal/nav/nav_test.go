package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	tests := []struct {
		input string
		want  Section
	}{
		{"dashboard", SectionDashboard},
		{"users", SectionUsers},
		{"products", SectionProducts},
		{"orders", SectionOrders},
		{"", SectionDashboard},
		{"unknown", SectionDashboard},
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSection(tt.input))
		})
	}
}

// 이전 섹션이 무엇이든 선택 값만으로 결정됩니다. (가드 없음)
func TestParseSection_IgnoresPriorState(t *testing.T) {
	sequence := []string{"orders", "users", "users", "dashboard", "products"}
	want := []Section{SectionOrders, SectionUsers, SectionUsers, SectionDashboard, SectionProducts}

	for i, v := range sequence {
		assert.Equal(t, want[i], ParseSection(v))
	}
}

func TestItems(t *testing.T) {
	items := Items()
	require.Len(t, items, 4)

	assert.Equal(t, SectionDashboard, items[0].Section)
	assert.Equal(t, "/dashboard", items[0].Path)
	assert.Equal(t, "Dashboard", items[0].Label)
	assert.Equal(t, SectionOrders, items[3].Section)
	assert.Equal(t, "Orders", items[3].Label)
}
