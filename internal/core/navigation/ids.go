package navigation

import "Nadi/internal/core/domain"

const (
	idSpace    = 10000
	idAttempts = 64
)

// nextIDLocked draws a random GR-<year>-NNNN id that is not yet in the
// collection.
func (s *Session) nextIDLocked(year int) (string, error) {
	for range idAttempts {
		id := domain.FormatGrievanceID(year, s.opts.RandIntN(idSpace))
		if s.findLocked(id) == nil {
			return id, nil
		}
		s.log.Debug().Str("grievance_id", id).Msg("Grievance id collision; drawing again")
	}
	return "", ErrIDSpaceExhausted
}
