package suggest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_ExactTitleMatch(t *testing.T) {
	s := NewServiceWithSeed(1)
	got := s.Suggest("Software Engineer")
	require.Len(t, got, 3)
	for _, b := range got {
		assert.Contains(t, categories[0].Bullets, b)
	}
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	s := NewServiceWithSeed(1)
	got := s.Suggest("pRoDuCt MaNaGeR")
	require.Len(t, got, 3)
	for _, b := range got {
		assert.Contains(t, bulletsForTitle(t, "Product Manager"), b)
	}
}

func TestSuggest_PartialTitleMatch(t *testing.T) {
	s := NewServiceWithSeed(1)
	// "Senior Frontend Developer" contains the registered title.
	got := s.Suggest("Senior Frontend Developer")
	require.Len(t, got, 3)
	for _, b := range got {
		assert.Contains(t, bulletsForTitle(t, "Frontend Developer"), b)
	}
}

func TestSuggest_KeywordMatch(t *testing.T) {
	s := NewServiceWithSeed(1)
	got := s.Suggest("seo wizard")
	require.Len(t, got, 3)
	for _, b := range got {
		assert.Contains(t, bulletsForTitle(t, "SEO Specialist"), b)
	}
}

func TestSuggest_NoMatchFallsBackToDefaults(t *testing.T) {
	s := NewServiceWithSeed(1)
	got := s.Suggest("Underwater Basket Weaver")
	assert.Equal(t, defaultBullets[:3], got)
}

func TestSuggest_BlankRoleFallsBackToDefaults(t *testing.T) {
	// A blank role must not substring-match into the first category.
	s := NewServiceWithSeed(1)
	assert.Equal(t, defaultBullets[:3], s.Suggest(""))
	assert.Equal(t, defaultBullets[:3], s.Suggest("   "))
}

func TestSuggest_ConcurrentCallsShareOneService(t *testing.T) {
	s := NewService()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := s.Suggest("Software Engineer")
			assert.Len(t, got, 3)
		}()
	}
	wg.Wait()
}

func TestSuggest_NoDuplicateBullets(t *testing.T) {
	s := NewServiceWithSeed(42)
	for i := 0; i < 20; i++ {
		got := s.Suggest("Data Scientist")
		seen := map[string]bool{}
		for _, b := range got {
			assert.False(t, seen[b], "bullet repeated in one batch: %s", b)
			seen[b] = true
		}
	}
}

func TestSuggest_TieKeepsFirstRegistered(t *testing.T) {
	// "javascript" is a keyword of both the software and frontend categories;
	// the earlier entry must win the tie.
	cat := bestCategory("javascript")
	require.NotNil(t, cat)
	assert.Equal(t, categories[0].Titles, cat.Titles)
}

func TestApply(t *testing.T) {
	assert.Equal(t, "a\nb", Apply("", []string{"a", "b"}))
	assert.Equal(t, "existing\na\nb", Apply("existing", []string{"a", "b"}))
	assert.Equal(t, "existing", Apply("existing", nil))
}

func bulletsForTitle(t *testing.T, title string) []string {
	t.Helper()
	for _, cat := range categories {
		for _, registered := range cat.Titles {
			if registered == title {
				return cat.Bullets
			}
		}
	}
	t.Fatalf("no category registered for title %q", title)
	return nil
}
