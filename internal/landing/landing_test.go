package landing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/carousel"
)

func TestItemsHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Agents() {
		assert.False(t, seen[a.ItemID()], "duplicate agent id %s", a.ItemID())
		seen[a.ItemID()] = true
		assert.NotEmpty(t, a.Title())
	}
	assert.Len(t, seen, 3)

	seen = map[string]bool{}
	for _, f := range Features() {
		assert.False(t, seen[f.ItemID()])
		seen[f.ItemID()] = true
	}
	assert.Len(t, seen, 5)
}

func TestPresetsValidate(t *testing.T) {
	require.NoError(t, AgentsPreset().Carousel.Validate(len(Agents())))
	require.NoError(t, FeaturesPreset().Carousel.Validate(len(Features())))
}

func TestAgentsPresetCentersApollo(t *testing.T) {
	c, err := carousel.New(Agents(),
		carousel.WithConfig(AgentsPreset().Carousel),
		carousel.WithScheduler(carousel.NewFrameScheduler()),
	)
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, "Apollo", c.Selected().Name)
	assert.Equal(t, carousel.SlotLeft, c.Slot(0))
	assert.Equal(t, carousel.SlotRight, c.Slot(2))
}

func TestLayout(t *testing.T) {
	area := carousel.Rect{Width: 1280, Height: 720}
	for _, section := range []string{SectionAgents, SectionFeatures} {
		t.Run(section, func(t *testing.T) {
			l := Layout(section, area)
			assert.Equal(t, area, l.Area)
			assert.Less(t, l.PrevButton.X+l.PrevButton.Width, area.Width/2)
			assert.Greater(t, l.NextButton.X, area.Width/2)
			assert.False(t, l.PrevButton.Intersects(l.NextButton))
			assert.InDelta(t, area.Width-l.NextButton.X-l.NextButton.Width, l.PrevButton.X, 1e-9, "buttons are symmetric")
		})
	}
}

func TestCardSizeShrinks(t *testing.T) {
	for _, section := range []string{SectionAgents, SectionFeatures} {
		wide, _ := CardSize(section, 1280)
		narrow, _ := CardSize(section, 375)
		assert.Greater(t, wide, narrow, section)
	}
}
