package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_HasDedicatedGPU(t *testing.T) {
	gpu := func(s string) *string { return &s }

	testCases := []struct {
		name string
		gpu  *string
		want bool
	}{
		{"nil", nil, false},
		{"empty", gpu(""), false},
		{"literal None", gpu("None"), false},
		{"discrete", gpu("NVIDIA RTX 4060"), true},
		{"integrated but named", gpu("Intel Iris Xe"), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Product{GPU: tc.gpu}.HasDedicatedGPU())
		})
	}
}

func TestProduct_MatchesBrand(t *testing.T) {
	p := Product{Brand: "Lenovo"}
	assert.True(t, p.MatchesBrand("lenovo"))
	assert.True(t, p.MatchesBrand("LENOVO"))
	assert.False(t, p.MatchesBrand("Dell"))
}

func TestParseUseCategory(t *testing.T) {
	c, err := ParseUseCategory("creative")
	require.NoError(t, err)
	assert.Equal(t, UseCreative, c)

	_, err = ParseUseCategory("Gaming")
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestPreferences_Merge(t *testing.T) {
	budget := 1000.0
	category := UseStudent
	brand := "acer"

	var acc Preferences
	acc.Merge(Preferences{Budget: &budget, UseCategory: &category})
	acc.Merge(Preferences{BrandPreference: &brand})

	require.NotNil(t, acc.Budget)
	assert.Equal(t, 1000.0, *acc.Budget)
	assert.Equal(t, UseStudent, *acc.UseCategory)
	assert.Equal(t, "acer", *acc.BrandPreference)

	t.Run("later value wins", func(t *testing.T) {
		newBudget := 1400.0
		acc.Merge(Preferences{Budget: &newBudget})
		assert.Equal(t, 1400.0, *acc.Budget)
	})

	t.Run("empty update clears nothing", func(t *testing.T) {
		before := acc.SetFields()
		acc.Merge(Preferences{})
		assert.Equal(t, before, acc.SetFields())
	})

	t.Run("merged values are copies", func(t *testing.T) {
		ram := 16
		acc.Merge(Preferences{MinRAMGB: &ram})
		ram = 4
		assert.Equal(t, 16, *acc.MinRAMGB)
	})
}

func TestPreferences_Helpers(t *testing.T) {
	var p Preferences
	assert.True(t, p.IsEmpty())
	assert.False(t, p.WantsGPU())
	assert.Empty(t, p.SetFields())

	gpu := false
	p.PreferGPU = &gpu
	assert.False(t, p.IsEmpty())
	assert.False(t, p.WantsGPU())

	gpu = true
	storage := 512
	p.MinStorageGB = &storage
	assert.True(t, p.WantsGPU())
	assert.Equal(t, []string{"min_storage", "prefer_gpu"}, p.SetFields())
}

func TestConversation_AddMessage(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	conv := NewConversation("c1", start)
	assert.Equal(t, StageGreeting, conv.Stage)
	assert.True(t, conv.Preferences.IsEmpty())

	for i := 0; i < MaxTranscriptMessages+5; i++ {
		conv.AddMessage(SenderUser, string(rune('a'+i%26)), start.Add(time.Duration(i)*time.Second))
	}

	require.Len(t, conv.Messages, MaxTranscriptMessages)
	assert.Equal(t, start.Add(5*time.Second), conv.Messages[0].Timestamp)
	assert.Equal(t, start.Add(time.Duration(MaxTranscriptMessages+4)*time.Second), conv.UpdatedAt)
}
