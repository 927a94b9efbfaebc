package mom

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

func newTestMeeting() *entities.Meeting {
	return entities.NewMeeting("Weekly Sync", []string{"pm@example.com"}, "", "manual", entities.MeetingSourceManual)
}

func TestAppendVersionIsIdempotent(t *testing.T) {
	m := newTestMeeting()

	first := AppendVersion(m, "rendered mom text", "meeting_end")
	second := AppendVersion(m, "rendered mom text", "regenerate")

	require.Len(t, m.MomVersions, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "meeting_end", second.Reason)
}

func TestAppendVersionStoresDistinctTexts(t *testing.T) {
	m := newTestMeeting()

	AppendVersion(m, "version one", "meeting_end")
	AppendVersion(m, "version two", "regenerate")

	require.Len(t, m.MomVersions, 2)
	assert.Equal(t, "version one", m.MomVersions[0].Text)
	assert.Equal(t, "version two", m.MomVersions[1].Text)
}

func TestAppendVersionDefaultsReason(t *testing.T) {
	m := newTestMeeting()

	v := AppendVersion(m, "some text", "")
	assert.Equal(t, "update", v.Reason)
}

func TestAppendVersionHistoryLimit(t *testing.T) {
	m := newTestMeeting()

	for i := 0; i < entities.MomVersionLimit+5; i++ {
		AppendVersion(m, fmt.Sprintf("text %d", i), "regenerate")
	}

	require.Len(t, m.MomVersions, entities.MomVersionLimit)
	// Oldest snapshots are evicted first.
	assert.Equal(t, "text 5", m.MomVersions[0].Text)
	assert.Equal(t, fmt.Sprintf("text %d", entities.MomVersionLimit+4), m.MomVersions[len(m.MomVersions)-1].Text)
}

func TestDiffSetMembership(t *testing.T) {
	oldText := "line a\nline b\nline c"
	newText := "line b\nline c\nline d"

	diff := Diff(oldText, newText)

	assert.Equal(t, []string{"line a"}, diff.Removed)
	assert.Equal(t, []string{"line d"}, diff.Added)
}

func TestDiffIgnoresReorderedLines(t *testing.T) {
	diff := Diff("one\ntwo\nthree", "three\none\ntwo")

	assert.Empty(t, diff.Added)
	assert.Empty(t, diff.Removed)
}

func TestDiffLineCaps(t *testing.T) {
	var oldLines, newLines string
	for i := 0; i < 40; i++ {
		oldLines += fmt.Sprintf("old %d\n", i)
		newLines += fmt.Sprintf("new %d\n", i)
	}

	diff := Diff(oldLines, newLines)

	assert.Len(t, diff.Removed, 30)
	assert.Len(t, diff.Added, 30)
	assert.Equal(t, "old 0", diff.Removed[0])
	assert.Equal(t, "new 0", diff.Added[0])
}

func TestDiffVersionsRequiresTwoVersions(t *testing.T) {
	m := newTestMeeting()
	AppendVersion(m, "only one", "meeting_end")

	_, err := DiffVersions(m, uuid.New(), uuid.New())
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorCode_NOT_ENOUGH_VERSIONS, appErr.Code)
}

func TestDiffVersionsUnknownID(t *testing.T) {
	m := newTestMeeting()
	a := AppendVersion(m, "first", "meeting_end")
	AppendVersion(m, "second", "regenerate")

	_, err := DiffVersions(m, a.ID, uuid.New())
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorCode_VERSION_NOT_FOUND, appErr.Code)
}

func TestDiffVersionsByID(t *testing.T) {
	m := newTestMeeting()
	a := AppendVersion(m, "alpha\nshared", "meeting_end")
	b := AppendVersion(m, "shared\nbeta", "regenerate")

	diff, err := DiffVersions(m, a.ID, b.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha"}, diff.Removed)
	assert.Equal(t, []string{"beta"}, diff.Added)
}
