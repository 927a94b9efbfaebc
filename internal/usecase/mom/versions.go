package mom

import (
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/johnquangdev/mom-ai/errors"
	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

const diffLineLimit = 30

// AppendVersion snapshots a rendered MoM onto the meeting's history. If the
// latest stored version has byte-identical text, that version is returned
// and nothing is appended (write-idempotent). History keeps the most recent
// 50 snapshots.
func AppendVersion(meeting *entities.Meeting, text, reason string) entities.MomVersion {
	if n := len(meeting.MomVersions); n > 0 && meeting.MomVersions[n-1].Text == text {
		return meeting.MomVersions[n-1]
	}

	snapshot := entities.NewMomVersion(text, reason)
	meeting.MomVersions = append(meeting.MomVersions, snapshot)
	if len(meeting.MomVersions) > entities.MomVersionLimit {
		meeting.MomVersions = meeting.MomVersions[len(meeting.MomVersions)-entities.MomVersionLimit:]
	}
	return snapshot
}

// Diff is a set-membership line diff: removed lines exist in old but
// nowhere in new, added lines exist in new but nowhere in old, both in
// original order and capped. Reordered-but-unchanged lines do not appear.
func Diff(oldText, newText string) entities.MomDiff {
	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")

	oldSet := make(map[string]struct{}, len(oldLines))
	for _, line := range oldLines {
		oldSet[line] = struct{}{}
	}
	newSet := make(map[string]struct{}, len(newLines))
	for _, line := range newLines {
		newSet[line] = struct{}{}
	}

	removed := make([]string, 0)
	for _, line := range oldLines {
		if _, ok := newSet[line]; !ok {
			removed = append(removed, line)
			if len(removed) >= diffLineLimit {
				break
			}
		}
	}
	added := make([]string, 0)
	for _, line := range newLines {
		if _, ok := oldSet[line]; !ok {
			added = append(added, line)
			if len(added) >= diffLineLimit {
				break
			}
		}
	}

	return entities.MomDiff{Added: added, Removed: removed}
}

// DiffVersions diffs two stored snapshots by id. Requires at least two
// stored versions; unknown ids are a typed rejection.
func DiffVersions(meeting *entities.Meeting, idA, idB uuid.UUID) (entities.MomDiff, error) {
	if len(meeting.MomVersions) < 2 {
		return entities.MomDiff{}, apperrors.ErrNotEnoughVersions()
	}

	var a, b *entities.MomVersion
	for i := range meeting.MomVersions {
		v := &meeting.MomVersions[i]
		if v.ID == idA {
			a = v
		}
		if v.ID == idB {
			b = v
		}
	}
	if a == nil {
		return entities.MomDiff{}, apperrors.ErrVersionNotFound(idA.String())
	}
	if b == nil {
		return entities.MomDiff{}, apperrors.ErrVersionNotFound(idB.String())
	}

	return Diff(a.Text, b.Text), nil
}
