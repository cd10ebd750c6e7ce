package unitofwork

import (
	"context"

	"note-sharing-be/internal/repository/contract"
)

// UnitOfWork is the transaction boundary for every multi-row mutation.
// Repositories obtained from it share the active transaction once Begin
// has been called; before that they run against the base connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CompanyRepository() contract.CompanyRepository
	UserRepository() contract.UserRepository
	WorkspaceRepository() contract.WorkspaceRepository
	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
	NoteTagRepository() contract.NoteTagRepository
	NoteHistoryRepository() contract.NoteHistoryRepository
	NoteVoteRepository() contract.NoteVoteRepository
	NotificationRepository() contract.NotificationRepository
}
