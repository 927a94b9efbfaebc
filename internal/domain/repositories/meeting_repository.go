package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// MeetingRepository owns the meeting aggregates. Implementations must
// serialize mutations per meeting id: Update runs fn under a per-meeting
// lock so the synchronous core never sees concurrent mutation.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *entities.Meeting) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)
	// Update loads the meeting, applies fn under the meeting's lock, and
	// persists the result. fn returning an error aborts the update.
	Update(ctx context.Context, id uuid.UUID, fn func(*entities.Meeting) error) (*entities.Meeting, error)
	GetByShareID(ctx context.Context, shareID string) (*entities.Meeting, error)
	Count(ctx context.Context) (int, error)
}
