package huddle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveArticle(t *testing.T) {
	st := newResearchState("Eagles", 21)
	st.Pool = testArticles(3)

	st.removeArticle(2)
	assert.Len(t, st.Pool, 2)
	assert.Equal(t, 1, st.Pool[0].ID)
	assert.Equal(t, 3, st.Pool[1].ID)

	// removing an unknown id is a no-op
	st.removeArticle(99)
	assert.Len(t, st.Pool, 2)
}

func TestSnapshot(t *testing.T) {
	st := newResearchState("Eagles", 21)
	assert.Contains(t, st.Snapshot(), "(none yet)")

	st.Profile = &TeamProfile{Name: "Eagles", Injuries: []string{"A"}}
	st.ArticlesRead = 3
	snap := st.Snapshot()
	assert.Contains(t, snap, "Articles read: 3")
	assert.Contains(t, snap, "injuries: [A]")
}
