package sqlite

import (
	"context"
	"database/sql"
)

// ContactRepository reads the identity tables whatsmeow keeps in the same
// database file.
type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// ResolveLIDToPhone maps a WhatsApp LID to its phone number. Unknown LIDs,
// and databases where whatsmeow has not created its tables yet, return the
// input unchanged.
func (r *ContactRepository) ResolveLIDToPhone(ctx context.Context, lid string) string {
	var pn string
	err := r.db.QueryRowContext(ctx, `SELECT pn FROM whatsmeow_lid_map WHERE lid = ?`, lid).Scan(&pn)
	if err != nil || pn == "" {
		return lid
	}
	return pn
}
